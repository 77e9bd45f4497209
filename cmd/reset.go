package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// resetCmd replaces the app document with defaults.
type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "replace the app document with defaults" }
func (*resetCmd) Usage() string {
	return `fin reset -force

  Replaces the whole app document with defaults. This is the only way the
  document is ever destroyed, so it requires -force.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Actually perform the reset")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: refusing to reset without -force")
		return subcommands.ExitUsageError
	}
	openStore().Reset()
	fmt.Println("Reset app document to defaults")
	return subcommands.ExitSuccess
}
