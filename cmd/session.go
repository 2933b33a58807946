package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/bookstand/bookstand"
	"github.com/bookstand/bookstand/date"
	"github.com/bookstand/bookstand/renderer"
)

// sessionCmd runs the interactive menu loop for a single operator. The
// ledger is loaded once at start and persisted only on "Save & Exit".
type sessionCmd struct {
	in  io.Reader
	out io.Writer
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run the interactive bookstore menu" }
func (*sessionCmd) Usage() string {
	return `bks session

  Starts an interactive session: add books, update stock, record sales and
  view reports from a numbered menu. State is written back to the inventory
  and sales files on "Save & Exit".
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	store := openStore()
	ledger := store.Load()
	scanner := bufio.NewScanner(c.in)

	for {
		fmt.Fprint(c.out, sessionMenu)
		choice, ok := c.prompt(scanner, "Enter choice: ")
		if !ok {
			// Input is gone (EOF). Leave without saving, like an interrupt.
			return subcommands.ExitSuccess
		}

		switch choice {
		case "1":
			c.addBook(scanner, ledger)
		case "2":
			c.setQuantity(scanner, ledger)
		case "3":
			c.recordSale(scanner, ledger)
		case "4":
			c.summary(ledger)
		case "5":
			c.charts(ledger)
		case "6":
			if err := store.Save(ledger); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			fmt.Fprintln(c.out, "Data saved. Goodbye!")
			return subcommands.ExitSuccess
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

const sessionMenu = `
--- Bookstore Menu ---
1. Add book
2. Update inventory quantity
3. Record sale
4. Show sales summary
5. Show charts
6. Save & Exit
`

// prompt prints a label and reads one line. ok is false when input is exhausted.
func (c *sessionCmd) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

func (c *sessionCmd) addBook(scanner *bufio.Scanner, ledger *bookstand.Ledger) {
	title, ok := c.prompt(scanner, "Title: ")
	if !ok {
		return
	}
	author, ok := c.prompt(scanner, "Author: ")
	if !ok {
		return
	}
	genre, ok := c.prompt(scanner, "Genre: ")
	if !ok {
		return
	}
	priceStr, ok := c.prompt(scanner, "Price: ")
	if !ok {
		return
	}
	quantityStr, ok := c.prompt(scanner, "Quantity: ")
	if !ok {
		return
	}

	price, err := bookstand.ParseMoney(priceStr, bookstand.DefaultCurrency)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	quantity, err := bookstand.ParseQuantity(quantityStr)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if err := ledger.AddBook(title, author, genre, price, quantity); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, "Book added successfully!")
}

func (c *sessionCmd) setQuantity(scanner *bufio.Scanner, ledger *bookstand.Ledger) {
	title, ok := c.prompt(scanner, "Title: ")
	if !ok {
		return
	}
	quantityStr, ok := c.prompt(scanner, "New quantity: ")
	if !ok {
		return
	}

	quantity, err := bookstand.ParseQuantity(quantityStr)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if err := ledger.SetQuantity(title, quantity); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, "Inventory updated!")
}

func (c *sessionCmd) recordSale(scanner *bufio.Scanner, ledger *bookstand.Ledger) {
	dateStr, ok := c.prompt(scanner, "Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	title, ok := c.prompt(scanner, "Title: ")
	if !ok {
		return
	}
	quantityStr, ok := c.prompt(scanner, "Quantity sold: ")
	if !ok {
		return
	}

	on, err := date.Parse(dateStr)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	quantity, err := bookstand.ParseQuantity(quantityStr)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	if _, err := ledger.RecordSale(on, title, quantity); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, "Sale recorded!")
}

func (c *sessionCmd) summary(ledger *bookstand.Ledger) {
	summary, err := bookstand.NewSummary(ledger)
	if errors.Is(err, bookstand.ErrNoSales) {
		fmt.Fprintln(c.out, "No sales yet.")
		return
	}
	printMarkdown(c.out, renderer.SummaryMarkdown(summary))
}

func (c *sessionCmd) charts(ledger *bookstand.Ledger) {
	charts, err := bookstand.NewCharts(ledger)
	if errors.Is(err, bookstand.ErrNoSales) {
		fmt.Fprintln(c.out, "No sales to show.")
		return
	}
	printMarkdown(c.out, renderer.ChartsMarkdown(charts))
}
