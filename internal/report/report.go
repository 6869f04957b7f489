package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Simplici0/savings/internal/savings"
)

const reportTitle = "Fulfillment Savings Report"

// Section headings, in emission order.
const (
	SectionInputs    = "Business Inputs"
	SectionBreakdown = "Cost Breakdown"
	SectionOverhead  = "Overhead"
	SectionTotals    = "Total Costs"
	SectionSummary   = "Savings Summary"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown report format")

// Document is everything a report shows. The numbers come from Result only.
type Document struct {
	Result       savings.Result
	ProviderName string
	Contact      string
	GeneratedAt  time.Time
}

// Sink receives the report one element at a time. Implementations keep the
// first write error and return it from Close.
type Sink interface {
	Title(text string)
	Section(name string)
	Group(name string)
	Field(label, value string)
	Footer(text string)
	Close() error
}

// Render walks the document once and emits it into sink.
func Render(doc Document, sink Sink, f Formatter) error {
	r := doc.Result
	provider := doc.ProviderName
	if provider == "" {
		provider = "Provider"
	}

	sink.Title(reportTitle)
	if !doc.GeneratedAt.IsZero() {
		sink.Field("Generated", doc.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	}

	sink.Section(SectionInputs)
	sink.Field("Package", r.Package.Label())
	sink.Field("Warehouse size", f.Number(r.Input.WarehouseSize)+" sqm")
	sink.Field("Orders per month", f.Number(r.Input.OrdersPerMonth))
	sink.Field("Average items per order", f.Number(r.Input.AverageItemsPerOrder))

	sink.Section(SectionBreakdown)
	for _, line := range r.Lines {
		sink.Group(line.Service.Label())
		sink.Field("Your cost", f.Currency(line.Merchant))
		sink.Field(provider+" cost", f.Currency(line.Alternate))
		sink.Field("Savings", f.Currency(line.Savings))
		sink.Field("Savings percentage", f.Percent(line.SavingsPercentage))
	}

	sink.Section(SectionOverhead)
	sink.Field("Your overhead", f.Currency(r.Merchant.Overhead))
	sink.Field(provider+" overhead", f.Currency(r.Alternate.Overhead))

	sink.Section(SectionTotals)
	sink.Field("Your total cost", f.Currency(r.Merchant.Total))
	sink.Field(provider+" total cost", f.Currency(r.Alternate.Total))

	sink.Section(SectionSummary)
	sink.Field("Monthly savings", f.Currency(r.Savings.Monthly))
	sink.Field("Yearly savings", f.Currency(r.Savings.Yearly))
	sink.Field("Savings percentage", f.Percent(r.Savings.Percentage))

	if doc.Contact != "" {
		sink.Footer(doc.Contact)
	}

	return sink.Close()
}

// Format identifies an export format.
type Format string

const (
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatText, FormatXLSX, FormatHTML}
}

// ParseFormat accepts a format name or its file extension ("txt").
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "text", "txt":
		return FormatText, nil
	case "xlsx":
		return FormatXLSX, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// ContentType is the MIME type of the exported document.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension is the file extension used for downloads.
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// NewSink returns the sink that writes format to w.
func NewSink(format Format, w io.Writer) (Sink, error) {
	switch format {
	case FormatText:
		return NewTextSink(w), nil
	case FormatXLSX:
		return NewSheetSink(w), nil
	case FormatHTML:
		return NewMarkdownSink(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write renders doc in the given format to w.
func Write(w io.Writer, format Format, doc Document, f Formatter) error {
	sink, err := NewSink(format, w)
	if err != nil {
		return err
	}
	if err := Render(doc, sink, f); err != nil {
		return fmt.Errorf("render %s report: %w", format, err)
	}
	return nil
}
