package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers with locale-aware grouping. Currency has at most
// two fraction digits, percentages exactly one.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a Formatter for a BCP 47 locale such as "en-US".
func NewFormatter(locale, currencySymbol string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return Formatter{printer: message.NewPrinter(tag), symbol: currencySymbol}, nil
}

// Currency formats an amount, e.g. "$17,040" or "-$12.5".
func (f Formatter) Currency(v float64) string {
	v = clampZero(v, 0.005)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + f.symbol + f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// Percent formats a percentage value, e.g. 40.58 as "40.6%".
func (f Formatter) Percent(v float64) string {
	v = clampZero(v, 0.05)
	return f.printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(1), number.MaxFractionDigits(1))) + "%"
}

// Number formats a plain quantity with at most two fraction digits.
func (f Formatter) Number(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(clampZero(v, 0.005), number.MaxFractionDigits(2)))
}

// clampZero keeps values that round to zero from printing as "-0".
func clampZero(v, epsilon float64) float64 {
	if math.Abs(v) < epsilon {
		return 0
	}
	return v
}
