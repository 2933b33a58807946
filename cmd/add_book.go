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

// addBookCmd holds the flags for the 'add' subcommand.
type addBookCmd struct {
	title    string
	author   string
	genre    string
	price    string
	quantity string
}

func (*addBookCmd) Name() string     { return "add" }
func (*addBookCmd) Synopsis() string { return "add a book or restock an existing one" }
func (*addBookCmd) Usage() string {
	return `bks add -title <title> -author <author> -genre <genre> -price <price> -quantity <n>

  Adds a new book to the inventory. If the title already exists, the given
  quantity is added to its stock and the other fields are left unchanged.
`
}

func (c *addBookCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the book (unique key).")
	f.StringVar(&c.author, "author", "", "Author of the book.")
	f.StringVar(&c.genre, "genre", "", "Genre of the book.")
	f.StringVar(&c.price, "price", "0", "Unit price, e.g. 12.99.")
	f.StringVar(&c.quantity, "quantity", "0", "Number of copies to add to stock.")
}

func (c *addBookCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := bookstand.ParseMoney(c.price, bookstand.DefaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := bookstand.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	ledger := store.Load()

	if err := ledger.AddBook(c.title, c.author, c.genre, price, quantity); err != nil {
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
