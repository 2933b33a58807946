package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bookstand/bookstand"
	"github.com/bookstand/bookstand/renderer"
)

// setQuantityCmd holds the flags for the 'set-quantity' subcommand.
type setQuantityCmd struct {
	title    string
	quantity string
}

func (*setQuantityCmd) Name() string     { return "set-quantity" }
func (*setQuantityCmd) Synopsis() string { return "overwrite the stock count of a book" }
func (*setQuantityCmd) Usage() string {
	return `bks set-quantity -title <title> -quantity <n>

  Sets the stock count of an existing book to an absolute value, replacing
  the previous count.
`
}

func (c *setQuantityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the book.")
	f.StringVar(&c.quantity, "quantity", "0", "New stock count.")
}

func (c *setQuantityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity, err := bookstand.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	ledger := store.Load()

	if err := ledger.SetQuantity(c.title, quantity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Book(*ledger.Book(c.title)))
	return subcommands.ExitSuccess
}
