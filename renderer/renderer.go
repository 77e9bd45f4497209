// Package renderer turns derived reports into markdown documents for
// terminal display. Renderers are pure: data in, markdown out, no storage
// access.
package renderer

import (
	"github.com/shopspring/decimal"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// amount renders a derived decimal aggregate as a localized amount string.
func amount(d decimal.Decimal) string {
	return finances.FormatAmount(d)
}

// cents renders integer cents as a localized currency string.
func cents(c int64) string {
	return finances.FormatCents(c)
}

// signedAmount renders a delta amount with an explicit sign.
func signedAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + amount(d.Neg())
	}
	return "+" + amount(d)
}
