package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bookstand/bookstand"
	"github.com/bookstand/bookstand/date"
	"github.com/bookstand/bookstand/renderer"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	title    string
	quantity string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against the inventory" }
func (*sellCmd) Usage() string {
	return `bks sell -title <title> -quantity <n> [-d <date>]

  Records a sale: checks availability, decrements the stock and appends one
  row to the sales log with the revenue at the current price. A sale that
  exceeds the stock is rejected entirely.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the sale (YYYY-MM-DD).")
	f.StringVar(&c.title, "title", "", "Title of the book sold.")
	f.StringVar(&c.quantity, "quantity", "1", "Number of copies sold.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := bookstand.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	ledger := store.Load()

	sale, err := ledger.RecordSale(on, c.title, quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Sale(sale))
	return subcommands.ExitSuccess
}
