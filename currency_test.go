package finances

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "thousands and decimal", in: "1.000,00", want: "1000"},
		{name: "plain decimal", in: "200,00", want: "200"},
		{name: "fractional", in: "1.234,56", want: "1234.56"},
		{name: "no separators", in: "10", want: "10"},
		{name: "currency symbol", in: "R$ 2.500,00", want: "2500"},
		{name: "surrounding spaces", in: "  50,00 ", want: "50"},
		{name: "empty", in: "", want: "0"},
		{name: "partial input", in: "12,", want: "12"},
		{name: "garbage", in: "abc", want: "0"},
		{name: "negative clamped", in: "-5,00", want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			want := decimal.RequireFromString(tc.want)
			if got := ParseAmount(tc.in); !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestParseAmount_IsPure(t *testing.T) {
	a := ParseAmount("1.000,00")
	b := ParseAmount("1.000,00")
	if !a.Equal(b) {
		t.Errorf("ParseAmount is not deterministic: %s != %s", a, b)
	}
}

func TestParseAmountCents(t *testing.T) {
	if got := ParseAmountCents("1.234,56"); got != 123456 {
		t.Errorf("ParseAmountCents = %d, want 123456", got)
	}
	if got := ParseAmountCents("nope"); got != 0 {
		t.Errorf("ParseAmountCents(garbage) = %d, want 0", got)
	}
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1.234,56"},
		{"0", "0,00"},
		{"1000000", "1.000.000,00"},
		{"12.3", "12,30"},
	}

	for _, tc := range testCases {
		d := decimal.RequireFromString(tc.in)
		if got := FormatAmount(d); got != tc.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(123456); got != "R$1.234,56" {
		t.Errorf("FormatCents(123456) = %q, want R$1.234,56", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1.234,56", "0,00", "999,99"} {
		if got := FormatAmount(ParseAmount(s)); got != s {
			t.Errorf("FormatAmount(ParseAmount(%q)) = %q", s, got)
		}
	}
}
