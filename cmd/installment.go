package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"

	finances "github.com/Gu-Fernandes/finances-sub000"
	"github.com/Gu-Fernandes/finances-sub000/renderer"
)

// installmentAddCmd creates a new installment plan.
type installmentAddCmd struct {
	name   string
	amount string
	count  int
	first  string
}

func (*installmentAddCmd) Name() string     { return "installment-add" }
func (*installmentAddCmd) Synopsis() string { return "create an installment plan" }
func (*installmentAddCmd) Usage() string {
	return `fin installment-add -name <name> -amount <amount> -count <n> [-first <YYYY-MM-DD>]

  Creates a plan of n equal monthly installments, all unpaid.
`
}

func (c *installmentAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the purchase")
	f.StringVar(&c.amount, "amount", "", "Amount of one installment, localized string")
	f.IntVar(&c.count, "count", 0, "Number of installments")
	f.StringVar(&c.first, "first", "", "First due date (YYYY-MM-DD). Defaults to today.")
}

func (c *installmentAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and a positive -count are required")
		return subcommands.ExitUsageError
	}
	first := c.first
	if first == "" {
		first = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", first); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing first due date: %v\n", err)
		return subcommands.ExitUsageError
	}

	plan := openBook().Add(c.name, finances.ParseAmountCents(c.amount), c.count, first)
	fmt.Printf("Created plan %s (%s)\n", plan.Name, plan.ID)
	return subcommands.ExitSuccess
}

// installmentPayCmd toggles one installment paid or unpaid.
type installmentPayCmd struct{}

func (*installmentPayCmd) Name() string     { return "installment-pay" }
func (*installmentPayCmd) Synopsis() string { return "toggle an installment paid or unpaid" }
func (*installmentPayCmd) Usage() string {
	return `fin installment-pay <plan-id> <n>

  Toggles installment n (1-based) on the plan.
`
}
func (*installmentPayCmd) SetFlags(f *flag.FlagSet) {}

func (c *installmentPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a plan id and an installment number")
		return subcommands.ExitUsageError
	}
	n, err := strconv.Atoi(f.Arg(1))
	if err != nil || n < 1 {
		fmt.Fprintln(os.Stderr, "Error: installment number must be a positive integer")
		return subcommands.ExitUsageError
	}
	openBook().TogglePaid(f.Arg(0), n-1)
	fmt.Printf("Toggled installment %d of plan %s\n", n, f.Arg(0))
	return subcommands.ExitSuccess
}

// installmentRmCmd deletes a plan.
type installmentRmCmd struct{}

func (*installmentRmCmd) Name() string     { return "installment-rm" }
func (*installmentRmCmd) Synopsis() string { return "delete an installment plan" }
func (*installmentRmCmd) Usage() string {
	return `fin installment-rm <plan-id>
`
}
func (*installmentRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *installmentRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a plan id")
		return subcommands.ExitUsageError
	}
	openBook().Remove(f.Arg(0))
	fmt.Printf("Removed plan %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

// installmentListCmd renders the installment book.
type installmentListCmd struct{}

func (*installmentListCmd) Name() string     { return "installments" }
func (*installmentListCmd) Synopsis() string { return "display the installment plans" }
func (*installmentListCmd) Usage() string {
	return `fin installments
`
}
func (*installmentListCmd) SetFlags(f *flag.FlagSet) {}

func (c *installmentListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.InstallmentsMarkdown(openBook().Plans()))
	return subcommands.ExitSuccess
}
