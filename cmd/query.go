package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	finances "github.com/Gu-Fernandes/finances-sub000"
)

// queryCmd evaluates a JSONPath expression against the persisted document.
type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the app document with JSONPath" }
func (*queryCmd) Usage() string {
	return `fin query <jsonpath>

  Evaluates a JSONPath expression against the persisted app document and
  prints the result as JSON. Handy for finding item ids:

  $ fin query '$.investments.stocks[*].id'
`
}
func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	// Query the re-encoded in-memory document, so defaults and normalization
	// apply exactly as every other command sees them.
	data, err := finances.EncodeDocument(openStore().Snapshot().Document)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding document: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating query: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
