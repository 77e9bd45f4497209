// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "budget")
	c.Register(&selectMonthCmd{}, "budget")
	c.Register(&addIncomeCmd{}, "budget")
	c.Register(&addBillCmd{}, "budget")
	c.Register(&addCardCmd{}, "budget")
	c.Register(&addMiscCmd{}, "budget")
	c.Register(&setInvestedCmd{}, "budget")
	c.Register(&copyBillsCmd{}, "budget")

	c.Register(&portfolioCmd{}, "investments")
	c.Register(&stocksCmd{}, "investments")
	c.Register(&investAddCmd{}, "investments")
	c.Register(&investSetCmd{}, "investments")
	c.Register(&investRmCmd{}, "investments")
	c.Register(&investSeedCmd{}, "investments")
	c.Register(&investTabCmd{}, "investments")

	c.Register(&piggySetCmd{}, "piggy bank")
	c.Register(&piggyReportCmd{}, "piggy bank")

	c.Register(&installmentAddCmd{}, "installments")
	c.Register(&installmentPayCmd{}, "installments")
	c.Register(&installmentRmCmd{}, "installments")
	c.Register(&installmentListCmd{}, "installments")

	c.Register(&queryCmd{}, "data")
	c.Register(&resetCmd{}, "data")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var homeDir = flag.String("home", defaultHome(), "Folder holding the persisted finance data")

// Logger is the logger handed to stores; main configures it before Execute.
var Logger = zerolog.Nop()

func defaultHome() string {
	if dir := os.Getenv("FIN_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finances"
	}
	return filepath.Join(home, ".finances")
}

func openStorage() finances.Storage {
	return finances.NewDirStorage(*homeDir)
}

// openStore opens the app-document store backed by the home folder.
func openStore() *finances.Store {
	return finances.Open(openStorage(), finances.WithLogger(Logger))
}

// openBook opens the installment-plan book backed by the home folder.
func openBook() *finances.InstallmentBook {
	return finances.OpenInstallments(openStorage(), finances.WithBookLogger(Logger))
}

// monthOrSelected resolves a -m flag value, falling back to the persisted
// month selection.
func monthOrSelected(s *finances.Store, value string) (finances.MonthKey, error) {
	if value == "" {
		return s.SelectedMonth(), nil
	}
	return finances.ParseMonthKey(value)
}
