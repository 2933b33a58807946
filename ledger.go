package bookstand

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/bookstand/bookstand/date"
)

// Errors reported by ledger operations. They are non-fatal: the operation is
// a no-op and the session continues.
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrNoSales           = errors.New("no sales yet")
)

// Ledger owns the inventory and the sales log, and the rules by which they
// mutate together.
//
// The inventory is indexed by title for O(1) lookup and update. The sales log
// is an ordered append-only sequence.
type Ledger struct {
	books map[string]*Book // inventory indexed by title
	sales []Sale           // append-only, in recording order
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{books: make(map[string]*Book)}
}

// NewLedgerFrom creates a ledger initialized from previously persisted
// inventory rows and sales log. Rows are taken as-is, without re-validation.
func NewLedgerFrom(books []Book, sales []Sale) *Ledger {
	l := NewLedger()
	for _, b := range books {
		book := b
		l.books[b.Title] = &book
	}
	l.sales = append(l.sales, sales...)
	return l
}

// Book returns a copy of the book with this title, or nil if unknown.
func (l *Ledger) Book(title string) *Book {
	b, ok := l.books[title]
	if !ok {
		return nil
	}
	book := *b
	return &book
}

// Books iterates over the inventory in title-sorted order.
func (l *Ledger) Books() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		titles := slices.Sorted(maps.Keys(l.books))
		for _, title := range titles {
			if !yield(*l.books[title]) {
				return
			}
		}
	}
}

// Sales iterates over the sales log in recording order.
func (l *Ledger) Sales() iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if !yield(s) {
				return
			}
		}
	}
}

// HasSales reports whether at least one sale has been recorded.
func (l *Ledger) HasSales() bool { return len(l.sales) > 0 }

// AddBook adds stock for a title. If the title is already in the inventory
// its quantity is incremented and the existing author, genre and price are
// kept. Otherwise a new book row is created.
//
// Price and quantity must not be negative, and the title must not be empty.
func (l *Ledger) AddBook(title, author, genre string, price Money, quantity Quantity) error {
	if title == "" {
		return errors.New("book title is missing")
	}
	if price.IsNegative() {
		return fmt.Errorf("book price must not be negative, got %s", price)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("book quantity must not be negative, got %s", quantity)
	}

	if b, ok := l.books[title]; ok {
		// Restocking an existing title. The submitted metadata is discarded,
		// but a mismatch is worth telling the operator about.
		if b.Author != author || b.Genre != genre || !b.Price.Equal(price) {
			log.Warn().
				Str("title", title).
				Str("kept_author", b.Author).
				Str("kept_genre", b.Genre).
				Str("kept_price", b.Price.Text()).
				Msg("restocking existing title, submitted metadata ignored")
		}
		b.Quantity = b.Quantity.Add(quantity)
		return nil
	}

	l.books[title] = &Book{
		Title:    title,
		Author:   author,
		Genre:    genre,
		Price:    price,
		Quantity: quantity,
	}
	return nil
}

// SetQuantity overwrites the stock count of a title with an absolute value.
// The previous count is discarded, not incremented.
func (l *Ledger) SetQuantity(title string, quantity Quantity) error {
	b, ok := l.books[title]
	if !ok {
		return fmt.Errorf("%q: %w", title, ErrBookNotFound)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("stock count must not be negative, got %s", quantity)
	}
	b.Quantity = quantity
	return nil
}

// RecordSale validates availability, computes the revenue from the current
// price, decrements the stock and appends one row to the sales log. The sale
// is rejected entirely if the stock cannot cover it; there is no partial
// fulfilment.
//
// It returns the recorded sale.
func (l *Ledger) RecordSale(on date.Date, title string, quantity Quantity) (Sale, error) {
	b, ok := l.books[title]
	if !ok {
		return Sale{}, fmt.Errorf("%q: %w", title, ErrBookNotFound)
	}
	if !quantity.IsPositive() {
		return Sale{}, fmt.Errorf("sale quantity must be positive, got %s", quantity)
	}
	if b.Quantity.LessThan(quantity) {
		return Sale{}, fmt.Errorf("cannot sell %s of %q, stock is %s: %w", quantity, title, b.Quantity, ErrInsufficientStock)
	}

	sale := Sale{
		Date:     on,
		Title:    title,
		Quantity: quantity,
		Revenue:  b.Price.Mul(quantity),
	}
	b.Quantity = b.Quantity.Sub(quantity)
	l.sales = append(l.sales, sale)
	return sale, nil
}
