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

// chartsCmd holds the flags for the 'charts' subcommand.
type chartsCmd struct{}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "display sales charts by genre and by month" }
func (*chartsCmd) Usage() string {
	return `bks charts

  Displays units sold by genre, revenue share by genre, and the monthly
  revenue trend, computed from the sales log joined with the inventory.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {}

func (c *chartsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := openStore().Load()

	charts, err := bookstand.NewCharts(ledger)
	if errors.Is(err, bookstand.ErrNoSales) {
		fmt.Println("No sales to show.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(os.Stdout, renderer.ChartsMarkdown(charts))
	return subcommands.ExitSuccess
}
