package finances

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount fields in the budget and piggy-bank subtrees hold localized decimal
// strings ("1.234,56") exactly as the user typed them, so partial or invalid
// input is never lost. Parsing is total: every consumer that needs a number
// goes through ParseAmount, which maps anything unparseable to zero.

// currencyCode is the currency used for all monetary display.
const currencyCode = money.BRL

// amountFormatter renders plain localized amounts, without currency symbol.
var amountFormatter = &money.Formatter{
	Fraction: 2,
	Decimal:  ",",
	Thousand: ".",
	Grapheme: "",
	Template: "1",
}

// ParseAmount parses a localized decimal-currency string ("1.234,56") into a
// non-negative decimal. Empty or unparseable input yields zero, and negative
// values are clamped to zero. It never fails.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	// "1.234,56": dots separate thousands, the comma is the decimal mark.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseAmountCents parses a localized decimal-currency string into integer
// cents, with the same total semantics as ParseAmount.
func ParseAmountCents(s string) int64 {
	return ParseAmount(s).Shift(2).Round(0).IntPart()
}

// FormatAmount formats a decimal as a plain localized amount string with two
// fraction digits ("1.234,56").
func FormatAmount(d decimal.Decimal) string {
	return amountFormatter.Format(d.Shift(2).Round(0).IntPart())
}

// FormatCents formats integer cents as a localized currency string including
// the currency symbol ("R$1.234,56").
func FormatCents(cents int64) string {
	return money.New(cents, currencyCode).Display()
}

// FormatAmountCents formats integer cents as a plain localized amount string,
// without currency symbol.
func FormatAmountCents(cents int64) string {
	return amountFormatter.Format(cents)
}
