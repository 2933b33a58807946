package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bookstand/bookstand"
	"github.com/bookstand/bookstand/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the sales summary" }
func (*summaryCmd) Usage() string {
	return `bks summary

  Displays the total revenue and the units sold per title, computed from the
  accumulated sales log.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := openStore().Load()

	summary, err := bookstand.NewSummary(ledger)
	if errors.Is(err, bookstand.ErrNoSales) {
		fmt.Println("No sales yet.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(os.Stdout, renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
