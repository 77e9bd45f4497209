package finances

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewMonthReport(t *testing.T) {
	month := BudgetMonth{
		Incomes:      []IncomeItem{{ID: "a", Amount: "1.000,00"}},
		FixedBills:   []FixedBillItem{{ID: "b", Amount: "200,00"}},
		CardExpenses: []CardExpenseItem{{ID: "c", Amount: "50,00"}},
		Invested:     InvestedSlot{Amount: "100,00"},
	}

	report := NewMonthReport(month)
	assert.True(t, report.IncomeTotal.Equal(dec("1000")), "income = %s", report.IncomeTotal)
	assert.True(t, report.ExpenseTotal.Equal(dec("250")), "expenses = %s", report.ExpenseTotal)
	assert.True(t, report.InvestedTotal.Equal(dec("100")), "invested = %s", report.InvestedTotal)
	assert.True(t, report.NetTotal.Equal(dec("650")), "net = %s", report.NetTotal)
}

func TestNewMonthReport_Idempotent(t *testing.T) {
	month := BudgetMonth{
		Incomes:      []IncomeItem{{Amount: "123,45"}},
		MiscExpenses: []MiscExpenseItem{{Amount: "oops"}, {Amount: "1,55"}},
	}
	first := NewMonthReport(month)
	second := NewMonthReport(month)
	assert.True(t, first.IncomeTotal.Equal(second.IncomeTotal))
	assert.True(t, first.ExpenseTotal.Equal(second.ExpenseTotal))
	assert.True(t, first.ExpenseTotal.Equal(dec("1.55")), "invalid amounts count as zero")
}

func TestNewDelta(t *testing.T) {
	d := NewDelta(dec("1200"), dec("1000"))
	assert.True(t, d.Amount.Equal(dec("200")))
	require.True(t, d.HasPercent)
	assert.InDelta(t, 20.0, float64(d.Percent), 0.0001)
	assert.Equal(t, "+20.00%", d.PercentString())
}

func TestNewDelta_UndefinedPercent(t *testing.T) {
	d := NewDelta(dec("500"), decimal.Zero)
	assert.True(t, d.Amount.Equal(dec("500")))
	assert.False(t, d.HasPercent)
	assert.Equal(t, "—", d.PercentString(), `"no prior data" renders as a dash, not zero`)
}

func TestNewDelta_NegativePrevious(t *testing.T) {
	// percentage uses the absolute value of the previous aggregate
	d := NewDelta(dec("-50"), dec("-100"))
	require.True(t, d.HasPercent)
	assert.InDelta(t, 50.0, float64(d.Percent), 0.0001)
}

func TestTopCategories(t *testing.T) {
	month := BudgetMonth{CardExpenses: []CardExpenseItem{
		{Category: CategoryFood, Amount: "100,00"},
		{Category: CategoryTransport, Amount: "300,00"},
		{Category: "", Amount: "20,00"},
		{Category: CategoryFood, Amount: "250,00"},
		{Category: CategoryLeisure, Amount: "30,00"},
		{Category: "Jetpacks", Amount: "5,00"}, // out-of-set folds into uncategorized
	}}

	top := TopCategories(month, 3)
	require.Len(t, top, 3)

	assert.Equal(t, CategoryFood, top[0].Category)
	assert.True(t, top[0].Total.Equal(dec("350")))
	assert.Equal(t, CategoryTransport, top[1].Category)
	assert.Equal(t, BudgetCategory(""), top[2].Category)
	assert.True(t, top[2].Total.Equal(dec("25")))
	assert.Equal(t, "Sem categoria", top[2].Label())
}

func TestTopCategories_StableTies(t *testing.T) {
	month := BudgetMonth{CardExpenses: []CardExpenseItem{
		{Category: CategoryLeisure, Amount: "50,00"},
		{Category: CategoryFood, Amount: "50,00"},
		{Category: CategoryTransport, Amount: "50,00"},
	}}

	top := TopCategories(month, 3)
	require.Len(t, top, 3)
	assert.Equal(t, CategoryLeisure, top[0].Category, "ties keep first-encountered order")
	assert.Equal(t, CategoryFood, top[1].Category)
	assert.Equal(t, CategoryTransport, top[2].Category)
}

func TestPercentOfIncome(t *testing.T) {
	pct, ok := PercentOfIncome(dec("250"), dec("1000"))
	require.True(t, ok)
	assert.InDelta(t, 25.0, float64(pct), 0.0001)

	_, ok = PercentOfIncome(dec("250"), decimal.Zero)
	assert.False(t, ok, "percentage of a zero whole is undefined")
}

func TestStockDerivedValues(t *testing.T) {
	st := StockItem{Quantity: "10", AvgPriceCents: 1000, CurrentQuoteCents: 1200}

	assert.Equal(t, int64(10000), StockCostCents(st))
	assert.Equal(t, int64(12000), StockValueCents(st))
	assert.Equal(t, int64(2000), StockValueCents(st)-StockCostCents(st))
}

func TestStockDerivedValues_FractionalQuantity(t *testing.T) {
	st := StockItem{Quantity: "2,5", AvgPriceCents: 333, CurrentQuoteCents: 1001}

	// round(333 × 2.5) = 833, round(1001 × 2.5) = 2503 (half away from zero)
	assert.Equal(t, int64(833), StockCostCents(st))
	assert.Equal(t, int64(2503), StockValueCents(st))
}

func TestStockDividendCents(t *testing.T) {
	st := StockItem{DividendCents: 150, DividendMonths: "12"}
	assert.Equal(t, int64(1800), StockDividendCents(st))

	st.DividendMonths = "junk"
	assert.Zero(t, StockDividendCents(st))
}

func TestProfitPercent(t *testing.T) {
	pct, ok := ProfitPercent(100000, 5000)
	require.True(t, ok)
	assert.InDelta(t, 5.0, float64(pct), 0.0001)

	_, ok = ProfitPercent(0, 5000)
	assert.False(t, ok, "zero applied has no percentage")
	assert.Equal(t, "0.00%", Percent(0).String(), "undefined renders as 0.00%")
}

func TestNewPortfolioReport(t *testing.T) {
	inv := DefaultDocument().Investments
	inv.FixedIncome = []FixedAmountItem{{ID: "a", AppliedCents: 100000, CurrentCents: 105000}}
	inv.Crypto = []FixedAmountItem{{ID: "b", AppliedCents: 50000, CurrentCents: 40000}}
	inv.Stocks = []StockItem{{
		ID: "c", Quantity: "10", AvgPriceCents: 1000, CurrentQuoteCents: 1200,
		DividendCents: 100, DividendMonths: "6",
	}}

	report := NewPortfolioReport(inv)
	require.Len(t, report.Kinds, 5)

	assert.Equal(t, int64(160000), report.AppliedCents) // 100000 + 50000 + 10000
	assert.Equal(t, int64(157000), report.CurrentCents) // 105000 + 40000 + 12000
	assert.Equal(t, int64(-3000), report.MarketProfitCents)
	assert.Equal(t, int64(600), report.DividendCents)
	assert.Equal(t, int64(-2400), report.ProfitCents,
		"dividend income joins profit only at the portfolio level")

	for _, kr := range report.Kinds {
		if kr.Kind == Stocks {
			assert.Equal(t, int64(2000), kr.ProfitCents, "per-stock profit excludes dividends")
		}
	}
}
