package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// selectMonthCmd records the month the user is working on.
type selectMonthCmd struct{}

func (*selectMonthCmd) Name() string     { return "select-month" }
func (*selectMonthCmd) Synopsis() string { return "select the working budget month" }
func (*selectMonthCmd) Usage() string {
	return `fin select-month <YYYY-MM>

  Records the month every budget command defaults to.
`
}
func (*selectMonthCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectMonthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one month argument")
		return subcommands.ExitUsageError
	}
	key, err := finances.ParseMonthKey(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	openStore().SetSelectedMonth(key)
	fmt.Printf("Selected month %s\n", key)
	return subcommands.ExitSuccess
}

// addIncomeCmd appends an income row to a budget month.
type addIncomeCmd struct {
	month  string
	label  string
	amount string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "add an income row to a budget month" }
func (*addIncomeCmd) Usage() string {
	return `fin add-income [-m <month>] -label <label> -amount <amount>

  Adds an income row. Amounts are localized strings like 1.234,56.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.label, "label", "", "Label of the income row")
	f.StringVar(&c.amount, "amount", "", "Amount as a localized string")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.AddIncome(key, c.label, c.amount)
	fmt.Printf("Added income to %s\n", key)
	return subcommands.ExitSuccess
}

// addBillCmd appends a fixed-bill row to a budget month.
type addBillCmd struct {
	month       string
	description string
	amount      string
}

func (*addBillCmd) Name() string     { return "add-bill" }
func (*addBillCmd) Synopsis() string { return "add a fixed-bill row to a budget month" }
func (*addBillCmd) Usage() string {
	return `fin add-bill [-m <month>] -desc <description> -amount <amount>
`
}

func (c *addBillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.description, "desc", "", "Description of the bill")
	f.StringVar(&c.amount, "amount", "", "Amount as a localized string")
}

func (c *addBillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.AddFixedBill(key, c.description, c.amount)
	fmt.Printf("Added fixed bill to %s\n", key)
	return subcommands.ExitSuccess
}

// addCardCmd appends a card-expense row to a budget month.
type addCardCmd struct {
	month    string
	category string
	amount   string
}

func (*addCardCmd) Name() string     { return "add-card" }
func (*addCardCmd) Synopsis() string { return "add a card-expense row to a budget month" }
func (*addCardCmd) Usage() string {
	return `fin add-card [-m <month>] -category <category> -amount <amount>

  Valid categories: ` + categoryList() + `.
  Any other value is stored as uncategorized.
`
}

func categoryList() string {
	names := make([]string, 0, len(finances.BudgetCategories))
	for _, c := range finances.BudgetCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func (c *addCardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.category, "category", "", "Expense category")
	f.StringVar(&c.amount, "amount", "", "Amount as a localized string")
}

func (c *addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.AddCardExpense(key, finances.BudgetCategory(c.category), c.amount)
	fmt.Printf("Added card expense to %s\n", key)
	return subcommands.ExitSuccess
}

// addMiscCmd appends a miscellaneous-expense row to a budget month.
type addMiscCmd struct {
	month       string
	description string
	amount      string
}

func (*addMiscCmd) Name() string     { return "add-misc" }
func (*addMiscCmd) Synopsis() string { return "add a miscellaneous-expense row to a budget month" }
func (*addMiscCmd) Usage() string {
	return `fin add-misc [-m <month>] -desc <description> -amount <amount>
`
}

func (c *addMiscCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.description, "desc", "", "Description of the expense")
	f.StringVar(&c.amount, "amount", "", "Amount as a localized string")
}

func (c *addMiscCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.AddMiscExpense(key, c.description, c.amount)
	fmt.Printf("Added miscellaneous expense to %s\n", key)
	return subcommands.ExitSuccess
}

// setInvestedCmd writes the month's single invested-amount slot.
type setInvestedCmd struct {
	month  string
	amount string
}

func (*setInvestedCmd) Name() string     { return "set-invested" }
func (*setInvestedCmd) Synopsis() string { return "set the month's invested amount" }
func (*setInvestedCmd) Usage() string {
	return `fin set-invested [-m <month>] -amount <amount>
`
}

func (c *setInvestedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
	f.StringVar(&c.amount, "amount", "", "Amount as a localized string")
}

func (c *setInvestedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.SetInvested(key, c.amount)
	fmt.Printf("Set invested amount for %s\n", key)
	return subcommands.ExitSuccess
}

// copyBillsCmd copies the previous month's fixed bills into a month.
type copyBillsCmd struct {
	month string
}

func (*copyBillsCmd) Name() string     { return "copy-bills" }
func (*copyBillsCmd) Synopsis() string { return "copy fixed bills from the previous month" }
func (*copyBillsCmd) Usage() string {
	return `fin copy-bills [-m <month>]

  Copies the previous month's fixed bills into the month, with fresh ids.
  Refused when the month already has bills or the previous month has none.
`
}

func (c *copyBillsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month (YYYY-MM). Defaults to the selected month.")
}

func (c *copyBillsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	key, err := monthOrSelected(store, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !store.CanCopyFixedBills(key) {
		fmt.Fprintf(os.Stderr, "Error: nothing to copy into %s\n", key)
		return subcommands.ExitFailure
	}
	store.CopyFixedBillsFromPrevious(key)
	fmt.Printf("Copied fixed bills from %s into %s\n", key.Prev(), key)
	return subcommands.ExitSuccess
}
