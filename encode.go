package bookstand

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/bookstand/bookstand/date"
)

// This file contains the codecs for the two persisted tables. Both are plain
// CSV with a fixed column set and order, so that the files stay readable and
// diffable in version control.

var inventoryHeader = []string{"Title", "Author", "Genre", "Price", "Quantity"}
var salesHeader = []string{"Date", "Title", "Quantity Sold", "Total Revenue"}

// DecodeInventory reads inventory rows from a CSV stream. A duplicate title
// is a format error.
func DecodeInventory(r io.Reader) ([]Book, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("format error in inventory: %w", err)
	}
	if len(records) == 0 {
		// An existing but empty file is the same as no file.
		return nil, nil
	}
	if !slices.Equal(records[0], inventoryHeader) {
		return nil, fmt.Errorf("format error in inventory: header is %q, want %q", records[0], inventoryHeader)
	}

	var books []Book
	seen := make(map[string]struct{})
	for i, rec := range records[1:] {
		line := i + 2 // 1-based, after the header
		title := rec[0]
		if _, ok := seen[title]; ok {
			return nil, fmt.Errorf("format error in inventory on line %d: title %q is already defined", line, title)
		}
		seen[title] = struct{}{}

		price, err := ParseMoney(rec[3], DefaultCurrency)
		if err != nil {
			return nil, fmt.Errorf("format error in inventory on line %d: %w", line, err)
		}
		quantity, err := ParseQuantity(rec[4])
		if err != nil {
			return nil, fmt.Errorf("format error in inventory on line %d: %w", line, err)
		}
		books = append(books, Book{
			Title:    title,
			Author:   rec[1],
			Genre:    rec[2],
			Price:    price,
			Quantity: quantity,
		})
	}
	return books, nil
}

// EncodeInventory writes the ledger's inventory as CSV, one row per book in
// title-sorted order.
func EncodeInventory(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryHeader); err != nil {
		return fmt.Errorf("persist error: cannot write inventory header: %w", err)
	}
	for book := range ledger.Books() {
		rec := []string{book.Title, book.Author, book.Genre, book.Price.Text(), book.Quantity.String()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("persist error: cannot write inventory row %q: %w", book.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeSales reads sales rows from a CSV stream, preserving their order.
func DecodeSales(r io.Reader) ([]Sale, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("format error in sales: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !slices.Equal(records[0], salesHeader) {
		return nil, fmt.Errorf("format error in sales: header is %q, want %q", records[0], salesHeader)
	}

	var sales []Sale
	for i, rec := range records[1:] {
		line := i + 2
		on, err := date.Parse(rec[0])
		if err != nil {
			return nil, fmt.Errorf("format error in sales on line %d: %w", line, err)
		}
		quantity, err := ParseQuantity(rec[2])
		if err != nil {
			return nil, fmt.Errorf("format error in sales on line %d: %w", line, err)
		}
		revenue, err := ParseMoney(rec[3], DefaultCurrency)
		if err != nil {
			return nil, fmt.Errorf("format error in sales on line %d: %w", line, err)
		}
		sales = append(sales, Sale{
			Date:     on,
			Title:    rec[1],
			Quantity: quantity,
			Revenue:  revenue,
		})
	}
	return sales, nil
}

// EncodeSales writes the ledger's sales log as CSV, one row per transaction
// in recording order.
func EncodeSales(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesHeader); err != nil {
		return fmt.Errorf("persist error: cannot write sales header: %w", err)
	}
	for sale := range ledger.Sales() {
		rec := []string{sale.Date.String(), sale.Title, sale.Quantity.String(), sale.Revenue.Text()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("persist error: cannot write sales row for %q: %w", sale.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
