package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// profitPercent renders a per-line profit percentage; an undefined one (no
// applied amount) shows as 0.00%.
func profitPercent(appliedCents, profitCents int64) string {
	pct, ok := finances.ProfitPercent(appliedCents, profitCents)
	if !ok {
		return finances.Percent(0).String()
	}
	return pct.SignedString()
}

// PortfolioMarkdown renders the whole-portfolio report: one line per
// category plus portfolio totals with dividend income.
func PortfolioMarkdown(inv finances.InvestmentsState) string {
	report := finances.NewPortfolioReport(inv)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Portfolio")

	rows := make([][]string, 0, len(report.Kinds))
	for _, kr := range report.Kinds {
		rows = append(rows, []string{
			kr.Kind.Label(),
			cents(kr.AppliedCents),
			cents(kr.CurrentCents),
			cents(kr.ProfitCents),
			profitPercent(kr.AppliedCents, kr.ProfitCents),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Applied", "Current", "Profit", "%"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.PlainText(fmt.Sprintf("Applied: %s", cents(report.AppliedCents)))
	doc.PlainText(fmt.Sprintf("Current: %s", cents(report.CurrentCents)))
	doc.PlainText(fmt.Sprintf("Dividends: %s", cents(report.DividendCents)))
	doc.PlainText(fmt.Sprintf("Profit (with dividends): %s (%s)",
		cents(report.ProfitCents), profitPercent(report.AppliedCents, report.ProfitCents)))

	return doc.String()
}

// StocksMarkdown renders the stock list with its derived cost and value
// columns.
func StocksMarkdown(stocks []finances.StockItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stocks")

	rows := make([][]string, 0, len(stocks))
	for _, st := range stocks {
		cost := finances.StockCostCents(st)
		value := finances.StockValueCents(st)
		rows = append(rows, []string{
			st.Name,
			st.Quantity,
			cents(st.AvgPriceCents),
			cents(st.CurrentQuoteCents),
			cents(cost),
			cents(value),
			cents(value - cost),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Qty", "Avg Price", "Quote", "Cost", "Value", "Profit"},
		Rows:   rows,
	})

	return doc.String()
}
