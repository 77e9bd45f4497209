package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// MonthSummaryMarkdown renders one budget month: totals, month-over-month
// deltas and the top card-expense categories.
func MonthSummaryMarkdown(key finances.MonthKey, month finances.BudgetMonth, previous finances.BudgetMonth) string {
	report := finances.NewMonthReport(month)
	comparison := report.Compare(finances.NewMonthReport(previous))

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget Summary for %s", key))

	doc.Table(md.TableSet{
		Header: []string{"Aggregate", "Total", "vs previous", "%"},
		Rows: [][]string{
			{"Income", amount(report.IncomeTotal), signedAmount(comparison.Income.Amount), comparison.Income.PercentString()},
			{"Expenses", amount(report.ExpenseTotal), signedAmount(comparison.Expense.Amount), comparison.Expense.PercentString()},
			{"Invested", amount(report.InvestedTotal), signedAmount(comparison.Invested.Amount), comparison.Invested.PercentString()},
			{"Net", amount(report.NetTotal), signedAmount(comparison.Net.Amount), comparison.Net.PercentString()},
		},
	})

	if pct, ok := finances.PercentOfIncome(report.ExpenseTotal, report.IncomeTotal); ok {
		doc.PlainText(fmt.Sprintf("Expenses take %s of income.", pct))
	}

	if top := finances.TopCategories(month, 3); len(top) > 0 {
		doc.H2("Top card-expense categories")
		rows := make([][]string, 0, len(top))
		for _, bucket := range top {
			rows = append(rows, []string{bucket.Label(), amount(bucket.Total)})
		}
		doc.Table(md.TableSet{Header: []string{"Category", "Total"}, Rows: rows})
	}

	return doc.String()
}
