// Package currency formats monetary amounts for display. Formatting happens
// only at the presentation/export boundary; aggregation math stays exact.
package currency

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

// Formatter renders amounts with a currency symbol for a fixed locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a Formatter for the given BCP 47 locale tag. An
// unparseable tag falls back to Brazilian Portuguese, the product default.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders the amount in the given ISO 4217 currency. Unknown codes
// degrade to "CODE 12.34" so exports never fail on an exotic currency.
// Rounding to display precision happens here and nowhere earlier.
func (f *Formatter) Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + amount.StringFixed(2)
	}
	return f.printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
}
