package renderer

import (
	"fmt"

	"github.com/bookstand/bookstand"
)

// Sale renders a recorded sale to a string.
func Sale(s bookstand.Sale) string {
	return fmt.Sprintf("Sold %s of %q on %s for %s", s.Quantity, s.Title, s.Date, s.Revenue)
}

// Book renders an inventory row to a string.
func Book(b bookstand.Book) string {
	return fmt.Sprintf("%q by %s (%s), %s, %s in stock", b.Title, b.Author, b.Genre, b.Price, b.Quantity)
}
