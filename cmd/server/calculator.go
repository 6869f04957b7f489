package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Simplici0/savings/internal/form"
	"github.com/Simplici0/savings/internal/metrics"
	"github.com/Simplici0/savings/internal/report"
	"github.com/Simplici0/savings/internal/savings"
)

type packageTab struct {
	Label    string
	Href     string
	Services string
	Active   bool
}

type summaryCard struct {
	Label string
	Value string
}

type chartBar struct {
	Label          string
	Merchant       string
	Alternate      string
	MerchantWidth  float64
	AlternateWidth float64
}

type downloadLink struct {
	Label string
	Href  string
}

type resultView struct {
	Cards     []summaryCard
	Bars      []chartBar
	Downloads []downloadLink
}

type calculatorViewData struct {
	baseViewData
	Package              string
	WarehouseSize        string
	OrdersPerMonth       string
	AverageItemsPerOrder string
	CanCalculate         bool
	Provider             string
	Packages             []packageTab
	Result               *resultView
}

const errorParam = "error"

func (s *server) handleCalculator(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view := calculatorViewData{
		baseViewData: baseViewData{ErrorMessage: query.Get(errorParam)},
		Provider:     s.provider,
		Package:      string(savings.Fulfillment),
	}

	req, err := form.Parse(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		view.ErrorMessage = err.Error()
		view.WarehouseSize = query.Get(form.FieldWarehouseSize)
		view.OrdersPerMonth = query.Get(form.FieldOrdersPerMonth)
		view.AverageItemsPerOrder = query.Get(form.FieldAverageItemsPerOrder)
		view.Packages = s.packageTabs(query, savings.Fulfillment)
		s.renderTemplate(w, "calculator.html", view)
		return
	}

	view.Package = string(req.Package)
	view.WarehouseSize = formatInput(req.WarehouseSize)
	view.OrdersPerMonth = formatInput(req.OrdersPerMonth)
	view.AverageItemsPerOrder = formatInput(req.AverageItemsPerOrder)
	view.CanCalculate = req.CanCalculate()
	view.Packages = s.packageTabs(query, req.Package)

	if req.CanCalculate() {
		result := s.compute(req)
		view.Result = s.resultView(req, result)
	}

	s.renderTemplate(w, "calculator.html", view)
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	format, err := report.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	req, err := form.Parse(query)
	if err != nil {
		s.redirectWithError(w, r, query, err.Error())
		return
	}
	if !req.CanCalculate() {
		s.redirectWithError(w, r, query, "Fill in every field with a value above 0 before downloading a report.")
		return
	}

	doc := report.Document{
		Result:       s.compute(req),
		ProviderName: s.provider,
		Contact:      s.contact,
		GeneratedAt:  s.now(),
	}

	// Render fully before writing so a failed export never sends a partial file.
	var buf bytes.Buffer
	if err := report.Write(&buf, format, doc, s.formatter); err != nil {
		metrics.IncreaseReportExportsTotal(string(format), metrics.StatusFailure)
		s.logger.Error("report export failed", zap.String("format", string(format)), zap.Error(err))
		s.redirectWithError(w, r, query, "The report could not be generated. Your results are unchanged; please try again.")
		return
	}
	metrics.IncreaseReportExportsTotal(string(format), metrics.StatusSuccess)

	filename := fmt.Sprintf("savings-report-%s.%s", uuid.NewString(), format.Extension())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (s *server) compute(req form.Request) savings.Result {
	metrics.IncreaseCalculationsTotal(string(req.Package))
	return savings.Compute(req.Input(), req.Package, s.assumptions)
}

func (s *server) redirectWithError(w http.ResponseWriter, r *http.Request, query url.Values, message string) {
	values := url.Values{}
	for _, key := range []string{form.FieldWarehouseSize, form.FieldOrdersPerMonth, form.FieldAverageItemsPerOrder, form.FieldPackage} {
		if v := query.Get(key); v != "" {
			values.Set(key, v)
		}
	}
	values.Set(errorParam, message)
	http.Redirect(w, r, "/?"+values.Encode(), http.StatusSeeOther)
}

func (s *server) packageTabs(query url.Values, active savings.Package) []packageTab {
	tabs := make([]packageTab, 0, len(savings.Packages()))
	for _, p := range savings.Packages() {
		values := url.Values{}
		for _, key := range []string{form.FieldWarehouseSize, form.FieldOrdersPerMonth, form.FieldAverageItemsPerOrder} {
			if v := query.Get(key); v != "" {
				values.Set(key, v)
			}
		}
		values.Set(form.FieldPackage, string(p))

		labels := make([]string, 0, 4)
		for _, svc := range p.Services() {
			labels = append(labels, svc.Label())
		}

		tabs = append(tabs, packageTab{
			Label:    p.Label(),
			Href:     "/?" + values.Encode(),
			Services: strings.Join(labels, ", "),
			Active:   p == active,
		})
	}
	return tabs
}

func (s *server) resultView(req form.Request, result savings.Result) *resultView {
	f := s.formatter
	view := &resultView{
		Cards: []summaryCard{
			{Label: "Your monthly cost", Value: f.Currency(result.Merchant.Total)},
			{Label: s.provider + " monthly cost", Value: f.Currency(result.Alternate.Total)},
			{Label: "Monthly savings", Value: f.Currency(result.Savings.Monthly)},
			{Label: "Yearly savings", Value: f.Currency(result.Savings.Yearly) + " (" + f.Percent(result.Savings.Percentage) + ")"},
		},
	}

	var peak float64
	for _, line := range result.Lines {
		peak = max(peak, line.Merchant, line.Alternate)
	}
	for _, line := range result.Lines {
		view.Bars = append(view.Bars, chartBar{
			Label:          line.Service.Label(),
			Merchant:       f.Currency(line.Merchant),
			Alternate:      f.Currency(line.Alternate),
			MerchantWidth:  barWidth(line.Merchant, peak),
			AlternateWidth: barWidth(line.Alternate, peak),
		})
	}

	encoded := req.Values().Encode()
	for _, format := range report.Formats() {
		view.Downloads = append(view.Downloads, downloadLink{
			Label: strings.ToUpper(format.Extension()),
			Href:  "/report." + format.Extension() + "?" + encoded,
		})
	}

	return view
}

func barWidth(v, peak float64) float64 {
	if peak <= 0 || v <= 0 {
		return 0
	}
	return v / peak * 100
}

func formatInput(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
