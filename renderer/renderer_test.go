package renderer

import (
	"strings"
	"testing"

	finances "github.com/Gu-Fernandes/finances-sub000"
	"github.com/shopspring/decimal"
)

func TestMonthSummaryMarkdown(t *testing.T) {
	month := finances.BudgetMonth{
		Incomes: []finances.IncomeItem{{ID: "a", Label: "Salário", Amount: "3.000,00"}},
		CardExpenses: []finances.CardExpenseItem{
			{ID: "b", Amount: "450,00", Category: finances.CategoryGroceries},
		},
	}
	key := finances.MustParseMonthKey("2025-03")

	got := MonthSummaryMarkdown(key, month, finances.BudgetMonth{})

	for _, want := range []string{
		"Budget Summary for 2025-03",
		"3.000,00",
		"450,00",
		"—", // no previous month, percentages undefined
		"Mercado",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthSummaryMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	inv := finances.InvestmentsState{
		FixedIncome: []finances.FixedAmountItem{{ID: "a", Name: "CDB", AppliedCents: 100000, CurrentCents: 110000}},
		Stocks: []finances.StockItem{{
			ID: "b", Name: "Ação", Quantity: "10",
			AvgPriceCents: 1000, CurrentQuoteCents: 1200,
			DividendCents: 50, DividendMonths: "4",
		}},
	}

	got := PortfolioMarkdown(inv)

	for _, want := range []string{
		"Investment Portfolio",
		"Renda Fixa",
		"Ações",
		"Dividends: R$2,00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PortfolioMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestPiggyMarkdown(t *testing.T) {
	summary := finances.NewPiggySummary(
		map[string]string{"2025-01": "100,00"},
		finances.MustParseMonthKey("2025-01"), 2)

	got := PiggyMarkdown(summary)

	for _, want := range []string{"Piggy Bank", "2025-01", "2025-02", "100,00"} {
		if !strings.Contains(got, want) {
			t.Errorf("PiggyMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestInstallmentsMarkdown(t *testing.T) {
	plans := []finances.InstallmentPlan{{
		ID: "a", Name: "Notebook", InstallmentCents: 50000, Count: 10,
		FirstDueDateISO: "2025-01-10",
		Paid:            []bool{true, true, false, false, false, false, false, false, false, false},
	}}

	got := InstallmentsMarkdown(plans)

	for _, want := range []string{"Installment Plans", "Notebook", "2/10"} {
		if !strings.Contains(got, want) {
			t.Errorf("InstallmentsMarkdown missing %q in:\n%s", want, got)
		}
	}

	if got := InstallmentsMarkdown(nil); !strings.Contains(got, "No installment plans.") {
		t.Errorf("empty book: got %q", got)
	}
}

func TestSignedAmount(t *testing.T) {
	if got := signedAmount(decimal.NewFromInt(200)); got != "+200,00" {
		t.Errorf("signedAmount(200) = %q", got)
	}
	if got := signedAmount(decimal.NewFromInt(-200)); got != "-200,00" {
		t.Errorf("signedAmount(-200) = %q", got)
	}
}
