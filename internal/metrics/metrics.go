package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "savings"

	calculationsTotal  = "calculations_total"
	reportExportsTotal = "report_exports_total"

	packageLabel = "package"
	formatLabel  = "format"
	statusLabel  = "status"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      calculationsTotal,
		Help:      "number of savings calculations by package",
	},
	[]string{packageLabel},
)

var reportExportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      reportExportsTotal,
		Help:      "number of report exports by format and outcome",
	},
	[]string{formatLabel, statusLabel},
)

// IncreaseCalculationsTotal counts one calculation for pkg.
func IncreaseCalculationsTotal(pkg string) {
	calculationsTotalMetric.With(prometheus.Labels{packageLabel: pkg}).Inc()
}

// IncreaseReportExportsTotal counts one export attempt.
func IncreaseReportExportsTotal(format, status string) {
	reportExportsTotalMetric.With(prometheus.Labels{formatLabel: format, statusLabel: status}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(reportExportsTotalMetric)
}
