// Package cmd implements the CLI application to manage the bookstore.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/bookstand/bookstand"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addBookCmd{}, "inventory")
	c.Register(&setQuantityCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&chartsCmd{}, "reports")

	c.Register(&sessionCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "", "Path to the inventory table (CSV). Defaults to $BOOKSTAND_INVENTORY_FILE or inventory.csv.")
var salesFile = flag.String("sales-file", "", "Path to the sales table (CSV). Defaults to $BOOKSTAND_SALES_FILE or sales.csv.")

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// openStore returns the persistence adapter bound to the configured files.
func openStore() bookstand.Store {
	inv := *inventoryFile
	if inv == "" {
		inv = getenv("BOOKSTAND_INVENTORY_FILE", "inventory.csv")
	}
	sales := *salesFile
	if sales == "" {
		sales = getenv("BOOKSTAND_SALES_FILE", "sales.csv")
	}
	return bookstand.Store{InventoryFile: inv, SalesFile: sales}
}
