package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// PiggyMarkdown renders the piggy-bank window with per-month running totals.
func PiggyMarkdown(summary finances.PiggySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Piggy Bank")
	doc.PlainText(fmt.Sprintf("Saved %s over %d of %d months.",
		amount(summary.Total), summary.FilledMonths, len(summary.Months)))

	rows := make([][]string, 0, len(summary.Months))
	for _, month := range summary.Months {
		filled := ""
		if month.Filled {
			filled = "✔"
		}
		rows = append(rows, []string{
			month.Key.String(),
			amount(month.Amount),
			amount(month.RunningTotal),
			filled,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Saved", "Running Total", "Filled"},
		Rows:   rows,
	})

	return doc.String()
}
