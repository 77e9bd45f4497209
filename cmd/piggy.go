package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finances "github.com/Gu-Fernandes/finances-sub000"
	"github.com/Gu-Fernandes/finances-sub000/renderer"
)

// piggySetCmd records a piggy-bank month.
type piggySetCmd struct{}

func (*piggySetCmd) Name() string     { return "piggy-set" }
func (*piggySetCmd) Synopsis() string { return "record a piggy-bank month" }
func (*piggySetCmd) Usage() string {
	return `fin piggy-set <YYYY-MM> <amount>

  Records the amount saved in a month. The value is stored exactly as typed;
  an empty or unparseable value makes the month unfilled.
`
}
func (*piggySetCmd) SetFlags(f *flag.FlagSet) {}

func (c *piggySetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a month and an amount")
		return subcommands.ExitUsageError
	}
	key, err := finances.ParseMonthKey(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	openStore().SetPiggyValue(key, f.Arg(1))
	fmt.Printf("Recorded piggy-bank amount for %s\n", key)
	return subcommands.ExitSuccess
}

// piggyReportCmd renders the piggy-bank window.
type piggyReportCmd struct {
	start string
}

func (*piggyReportCmd) Name() string     { return "piggy" }
func (*piggyReportCmd) Synopsis() string { return "display the piggy-bank report" }
func (*piggyReportCmd) Usage() string {
	return `fin piggy [-start <YYYY-MM>]

  Renders the 24-month window with a running total per month. The window
  starts at -start, defaulting to the current month.
`
}

func (c *piggyReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First month of the window (YYYY-MM)")
}

func (c *piggyReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	snap := store.Snapshot()

	start := snap.CurrentMonthKey
	if c.start != "" {
		key, err := finances.ParseMonthKey(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		start = key
	}

	summary := finances.NewPiggySummary(snap.Document.PiggyBank, start, finances.PiggyBankMonths)
	printMarkdown(renderer.PiggyMarkdown(summary))
	return subcommands.ExitSuccess
}
