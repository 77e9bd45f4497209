package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// InstallmentsMarkdown renders the installment-plan book.
func InstallmentsMarkdown(plans []finances.InstallmentPlan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Installment Plans")

	if len(plans) == 0 {
		doc.PlainText("No installment plans.")
		return doc.String()
	}

	rows := make([][]string, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, []string{
			plan.Name,
			cents(plan.InstallmentCents),
			fmt.Sprintf("%d/%d", plan.PaidCount(), plan.Count),
			cents(plan.TotalCents()),
			cents(plan.RemainingCents()),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Installment", "Paid", "Total", "Remaining"},
		Rows:   rows,
	})

	return doc.String()
}
