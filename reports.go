package finances

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Derived aggregation: pure, memoizable functions over snapshot values.
// No storage access, no side effects; every metric has exactly one formula
// here and every consumer goes through it.

// Percent is a percentage value for display.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString returns the percentage with an explicit sign, or "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MonthReport aggregates one budget month. All sums parse per item through
// ParseAmount, so invalid or empty strings count as zero.
type MonthReport struct {
	IncomeTotal   decimal.Decimal
	ExpenseTotal  decimal.Decimal
	InvestedTotal decimal.Decimal
	NetTotal      decimal.Decimal
}

// NewMonthReport computes the month totals:
// expenses are fixed bills + card expenses + miscellaneous expenses, and
// net is income − expenses − invested.
func NewMonthReport(m BudgetMonth) MonthReport {
	var report MonthReport
	report.IncomeTotal = decimal.Zero
	for _, item := range m.Incomes {
		report.IncomeTotal = report.IncomeTotal.Add(ParseAmount(item.Amount))
	}
	report.ExpenseTotal = decimal.Zero
	for _, item := range m.FixedBills {
		report.ExpenseTotal = report.ExpenseTotal.Add(ParseAmount(item.Amount))
	}
	for _, item := range m.CardExpenses {
		report.ExpenseTotal = report.ExpenseTotal.Add(ParseAmount(item.Amount))
	}
	for _, item := range m.MiscExpenses {
		report.ExpenseTotal = report.ExpenseTotal.Add(ParseAmount(item.Amount))
	}
	report.InvestedTotal = ParseAmount(m.Invested.Amount)
	report.NetTotal = report.IncomeTotal.Sub(report.ExpenseTotal).Sub(report.InvestedTotal)
	return report
}

// Delta is a month-over-month movement of one aggregate. The percentage is
// defined only when the previous value is non-zero: "no prior data" renders
// as "—", distinguishing it from "no change".
type Delta struct {
	Amount     decimal.Decimal
	Percent    Percent
	HasPercent bool
}

// NewDelta compares an aggregate against its previous-month value.
func NewDelta(current, previous decimal.Decimal) Delta {
	delta := Delta{Amount: current.Sub(previous)}
	if !previous.IsZero() {
		ratio := delta.Amount.Div(previous.Abs())
		delta.Percent = Percent(ratio.InexactFloat64() * 100)
		delta.HasPercent = true
	}
	return delta
}

// PercentString renders the delta percentage, or "—" when undefined.
func (d Delta) PercentString() string {
	if !d.HasPercent {
		return "—"
	}
	return d.Percent.SignedString()
}

// MonthComparison holds the deltas of every aggregate against the previous
// month.
type MonthComparison struct {
	Income   Delta
	Expense  Delta
	Invested Delta
	Net      Delta
}

// Compare computes the month-over-month deltas of r against previous.
func (r MonthReport) Compare(previous MonthReport) MonthComparison {
	return MonthComparison{
		Income:   NewDelta(r.IncomeTotal, previous.IncomeTotal),
		Expense:  NewDelta(r.ExpenseTotal, previous.ExpenseTotal),
		Invested: NewDelta(r.InvestedTotal, previous.InvestedTotal),
		Net:      NewDelta(r.NetTotal, previous.NetTotal),
	}
}

// CategoryTotal is one bucket of the card-expense breakdown.
type CategoryTotal struct {
	Category BudgetCategory
	Total    decimal.Decimal
}

// Label returns the display label of the bucket; the empty category folds
// into a literal uncategorized bucket.
func (c CategoryTotal) Label() string {
	if c.Category == "" {
		return "Sem categoria"
	}
	return string(c.Category)
}

// TopCategories groups the month's card expenses by category, sums the
// amounts per bucket and returns the n largest, descending. Ties keep the
// first-encountered-category order.
func TopCategories(m BudgetMonth, n int) []CategoryTotal {
	totals := make(map[BudgetCategory]int)
	var buckets []CategoryTotal
	for _, item := range m.CardExpenses {
		category := item.Category
		if !category.Valid() {
			category = ""
		}
		amount := ParseAmount(item.Amount)
		if i, ok := totals[category]; ok {
			buckets[i].Total = buckets[i].Total.Add(amount)
			continue
		}
		totals[category] = len(buckets)
		buckets = append(buckets, CategoryTotal{Category: category, Total: amount})
	}
	// Stable sort preserves first-encountered order among equal sums.
	for i := 1; i < len(buckets); i++ {
		for j := i; j > 0 && buckets[j].Total.GreaterThan(buckets[j-1].Total); j-- {
			buckets[j], buckets[j-1] = buckets[j-1], buckets[j]
		}
	}
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// PercentOfIncome returns part as a percentage of whole. The percentage is
// defined only when whole is strictly positive.
func PercentOfIncome(part, whole decimal.Decimal) (Percent, bool) {
	if !whole.IsPositive() {
		return 0, false
	}
	return Percent(part.Div(whole).InexactFloat64() * 100), true
}

// parseQuantity parses a stock quantity string, a localized decimal with the
// same total semantics as amounts.
func parseQuantity(s string) decimal.Decimal { return ParseAmount(s) }

// parseCount parses a non-negative integer count stored as a string,
// defaulting to zero.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// StockCostCents derives a stock's cost: round(avgPriceCents × quantity).
func StockCostCents(st StockItem) int64 {
	return decimal.NewFromInt(st.AvgPriceCents).Mul(parseQuantity(st.Quantity)).Round(0).IntPart()
}

// StockValueCents derives a stock's current value:
// round(currentQuoteCents × quantity).
func StockValueCents(st StockItem) int64 {
	return decimal.NewFromInt(st.CurrentQuoteCents).Mul(parseQuantity(st.Quantity)).Round(0).IntPart()
}

// StockDividendCents derives a stock's accumulated dividend income:
// dividendCents × dividendMonths. It contributes to profit only at the
// whole-portfolio level, never per stock.
func StockDividendCents(st StockItem) int64 {
	return st.DividendCents * parseCount(st.DividendMonths)
}

// ProfitPercent returns profit as a percentage of the applied amount, defined
// only when applied is strictly positive ("no percentage" renders as 0.00%).
func ProfitPercent(appliedCents, profitCents int64) (Percent, bool) {
	if appliedCents <= 0 {
		return 0, false
	}
	return Percent(float64(profitCents) / float64(appliedCents) * 100), true
}

// KindReport aggregates one investment category.
type KindReport struct {
	Kind         InvestmentKind
	AppliedCents int64
	CurrentCents int64
	ProfitCents  int64
}

// PortfolioReport aggregates the whole portfolio across the five categories.
// ProfitCents is market profit plus dividend income; the dividend part is
// added only here, at the portfolio level.
type PortfolioReport struct {
	Kinds             []KindReport
	AppliedCents      int64
	CurrentCents      int64
	MarketProfitCents int64
	DividendCents     int64
	ProfitCents       int64
}

// NewPortfolioReport computes the portfolio-wide totals.
func NewPortfolioReport(inv InvestmentsState) PortfolioReport {
	var report PortfolioReport
	for _, kind := range FixedAmountKinds {
		var kr KindReport
		kr.Kind = kind
		for _, item := range *inv.list(kind) {
			kr.AppliedCents += item.AppliedCents
			kr.CurrentCents += item.CurrentCents
		}
		kr.ProfitCents = kr.CurrentCents - kr.AppliedCents
		report.Kinds = append(report.Kinds, kr)
	}
	stocks := KindReport{Kind: Stocks}
	for _, st := range inv.Stocks {
		stocks.AppliedCents += StockCostCents(st)
		stocks.CurrentCents += StockValueCents(st)
		report.DividendCents += StockDividendCents(st)
	}
	stocks.ProfitCents = stocks.CurrentCents - stocks.AppliedCents
	report.Kinds = append(report.Kinds, stocks)

	for _, kr := range report.Kinds {
		report.AppliedCents += kr.AppliedCents
		report.CurrentCents += kr.CurrentCents
		report.MarketProfitCents += kr.ProfitCents
	}
	report.ProfitCents = report.MarketProfitCents + report.DividendCents
	return report
}
