package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(calculationsTotalMetric.WithLabelValues("store-pack"))
	IncreaseCalculationsTotal("store-pack")
	IncreaseCalculationsTotal("store-pack")
	assert.Equal(t, before+2, testutil.ToFloat64(calculationsTotalMetric.WithLabelValues("store-pack")))

	beforeExports := testutil.ToFloat64(reportExportsTotalMetric.WithLabelValues("xlsx", StatusFailure))
	IncreaseReportExportsTotal("xlsx", StatusFailure)
	assert.Equal(t, beforeExports+1, testutil.ToFloat64(reportExportsTotalMetric.WithLabelValues("xlsx", StatusFailure)))
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMiddleware("savings-test", reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/report.{format}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/report.txt", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("202", http.MethodGet, "/report.{format}")))
}

func TestNewMiddlewareRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMiddleware("dup", reg)
	require.NoError(t, err)

	_, err = NewMiddleware("dup", reg)
	require.Error(t, err)
}
