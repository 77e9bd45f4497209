package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Gu-Fernandes/finances-sub000/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a budget month summary" }
func (*summaryCmd) Usage() string {
	return `fin summary [-m <month>]

  Displays the month's aggregates, their movement against the previous month
  and the top card-expense categories.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to summarize (YYYY-MM). Defaults to the selected month.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	month := store.BudgetMonth(key)
	previous := store.BudgetMonth(key.Prev())
	printMarkdown(renderer.MonthSummaryMarkdown(key, month, previous))

	return subcommands.ExitSuccess
}
