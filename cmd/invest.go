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

func parseKind(s string) (finances.InvestmentKind, error) {
	kind := finances.ParseInvestmentKind(s)
	if kind == "" {
		return "", fmt.Errorf("unknown investment category %q (fixedIncome, funds, treasuryDirect, crypto, stocks)", s)
	}
	return kind, nil
}

// portfolioCmd renders the whole-portfolio report.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the investment portfolio report" }
func (*portfolioCmd) Usage() string {
	return `fin portfolio

  Displays per-category and portfolio totals. Dividend income counts toward
  profit only at the portfolio level.
`
}
func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.PortfolioMarkdown(openStore().Investments()))
	return subcommands.ExitSuccess
}

// stocksCmd renders the stock list with derived cost and value columns.
type stocksCmd struct{}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "display the stock list" }
func (*stocksCmd) Usage() string {
	return `fin stocks
`
}
func (*stocksCmd) SetFlags(f *flag.FlagSet) {}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.StocksMarkdown(openStore().Investments().Stocks))
	return subcommands.ExitSuccess
}

// investAddCmd appends a default item to a category list.
type investAddCmd struct {
	kind string
}

func (*investAddCmd) Name() string     { return "invest-add" }
func (*investAddCmd) Synopsis() string { return "add an investment item to a category" }
func (*investAddCmd) Usage() string {
	return `fin invest-add -kind <category>

  Appends one item with the category default name and zero amounts; use
  invest-set to fill it in.
`
}

func (c *investAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Investment category")
}

func (c *investAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store := openStore()
	if kind == finances.Stocks {
		store.AddStock()
	} else {
		store.AddInvestment(kind)
	}
	fmt.Printf("Added %s item\n", kind.Label())
	return subcommands.ExitSuccess
}

// investSetCmd patches the fields of an existing item.
type investSetCmd struct {
	kind string
	id   string

	name    string
	applied string
	current string

	quantity string
	price    string
	quote    string
	dividend string
	months   string
}

func (*investSetCmd) Name() string     { return "invest-set" }
func (*investSetCmd) Synopsis() string { return "update an investment item" }
func (*investSetCmd) Usage() string {
	return `fin invest-set -kind <category> -id <id> [field flags]

  Patches only the fields whose flags are given; everything else is kept.
  Stock-only flags: -qty, -price, -quote, -dividend, -months.
`
}

func (c *investSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Investment category")
	f.StringVar(&c.id, "id", "", "Item id (see query)")
	f.StringVar(&c.name, "name", "", "Display name")
	f.StringVar(&c.applied, "applied", "", "Applied amount, localized string")
	f.StringVar(&c.current, "current", "", "Current amount, localized string")
	f.StringVar(&c.quantity, "qty", "", "Stock quantity, localized decimal string")
	f.StringVar(&c.price, "price", "", "Average price per share, localized string")
	f.StringVar(&c.quote, "quote", "", "Current quote per share, localized string")
	f.StringVar(&c.dividend, "dividend", "", "Dividend per month, localized string")
	f.StringVar(&c.months, "months", "", "Number of dividend months")
}

func (c *investSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	store := openStore()

	if kind == finances.Stocks {
		store.UpdateStock(c.id, func(st *finances.StockItem) {
			if c.name != "" {
				st.Name = c.name
			}
			if c.quantity != "" {
				st.Quantity = c.quantity
			}
			if c.price != "" {
				st.AvgPriceCents = finances.ParseAmountCents(c.price)
			}
			if c.quote != "" {
				st.CurrentQuoteCents = finances.ParseAmountCents(c.quote)
			}
			if c.dividend != "" {
				st.DividendCents = finances.ParseAmountCents(c.dividend)
			}
			if c.months != "" {
				st.DividendMonths = c.months
			}
		})
	} else {
		store.UpdateInvestment(kind, c.id, func(item *finances.FixedAmountItem) {
			if c.name != "" {
				item.Name = c.name
			}
			if c.applied != "" {
				item.AppliedCents = finances.ParseAmountCents(c.applied)
			}
			if c.current != "" {
				item.CurrentCents = finances.ParseAmountCents(c.current)
			}
		})
	}
	fmt.Printf("Updated %s item %s\n", kind.Label(), c.id)
	return subcommands.ExitSuccess
}

// investRmCmd removes an item, honoring the one-item floor per category.
type investRmCmd struct {
	kind string
	id   string
}

func (*investRmCmd) Name() string     { return "invest-rm" }
func (*investRmCmd) Synopsis() string { return "remove an investment item" }
func (*investRmCmd) Usage() string {
	return `fin invest-rm -kind <category> -id <id>

  Removing the last remaining item of a category is refused.
`
}

func (c *investRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Investment category")
	f.StringVar(&c.id, "id", "", "Item id")
}

func (c *investRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store := openStore()
	if kind == finances.Stocks {
		store.RemoveStock(c.id)
	} else {
		store.RemoveInvestment(kind, c.id)
	}
	fmt.Printf("Removed %s item %s\n", kind.Label(), c.id)
	return subcommands.ExitSuccess
}

// investSeedCmd seeds an empty category with its default item.
type investSeedCmd struct {
	kind string
}

func (*investSeedCmd) Name() string     { return "invest-seed" }
func (*investSeedCmd) Synopsis() string { return "seed an empty investment category" }
func (*investSeedCmd) Usage() string {
	return `fin invest-seed -kind <category>

  Inserts one default item if the category is empty; otherwise does nothing.
`
}

func (c *investSeedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Investment category")
}

func (c *investSeedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	openStore().EnsureSeeded(kind)
	fmt.Printf("Seeded %s\n", kind.Label())
	return subcommands.ExitSuccess
}

// investTabCmd reads or writes the active investments tab.
type investTabCmd struct{}

func (*investTabCmd) Name() string     { return "invest-tab" }
func (*investTabCmd) Synopsis() string { return "show or set the active investments tab" }
func (*investTabCmd) Usage() string {
	return `fin invest-tab [<category>]

  With no argument, prints the active tab. With one, selects it.
`
}
func (*investTabCmd) SetFlags(f *flag.FlagSet) {}

func (c *investTabCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	if f.NArg() == 0 {
		fmt.Println(finances.LoadActiveTab(openStorage()))
		return subcommands.ExitSuccess
	}
	kind, err := parseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.SetActiveTab(kind)
	if err := finances.SaveActiveTab(openStorage(), kind); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving tab: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Active tab is now %s\n", kind.Label())
	return subcommands.ExitSuccess
}
