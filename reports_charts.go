package bookstand

import (
	"maps"
	"slices"

	"github.com/bookstand/bookstand/date"
)

// Charts holds the chart-ready aggregates derived from the sales log joined
// with the inventory's genre metadata. Rendering them (bars, shares, trend)
// belongs to the presentation layer.
type Charts struct {
	UnitsByGenre   []GenreUnits   // in genre-sorted order
	RevenueByGenre []GenreRevenue // in genre-sorted order
	MonthlyRevenue []MonthRevenue // in chronological order
}

// GenreUnits is the total units sold in one genre.
type GenreUnits struct {
	Genre string
	Units Quantity
}

// GenreRevenue is the total revenue of one genre, and its share of the
// overall revenue.
type GenreRevenue struct {
	Genre   string
	Revenue Money
	Share   Percent
}

// MonthRevenue is the revenue of one calendar month, summed across all
// titles. Month is the first day of that month.
type MonthRevenue struct {
	Month   date.Date
	Revenue Money
}

// NewCharts computes the chart aggregates from the ledger. It returns
// ErrNoSales when no sale has been recorded yet.
//
// A sale whose title no longer resolves to a book is dropped by the genre
// join. This cannot happen under current rules, since books are never
// deleted.
func NewCharts(ledger *Ledger) (*Charts, error) {
	if !ledger.HasSales() {
		return nil, ErrNoSales
	}

	units := make(map[string]Quantity)
	revenue := make(map[string]Money)
	monthly := make(map[date.Date]Money)
	var total Money

	for sale := range ledger.Sales() {
		book := ledger.Book(sale.Title)
		if book == nil {
			continue
		}
		units[book.Genre] = units[book.Genre].Add(sale.Quantity)
		revenue[book.Genre] = revenue[book.Genre].Add(sale.Revenue)
		total = total.Add(sale.Revenue)

		month := sale.Date.StartOfMonth()
		monthly[month] = monthly[month].Add(sale.Revenue)
	}

	charts := &Charts{}
	for _, genre := range sortedKeys(units) {
		charts.UnitsByGenre = append(charts.UnitsByGenre, GenreUnits{Genre: genre, Units: units[genre]})
		charts.RevenueByGenre = append(charts.RevenueByGenre, GenreRevenue{
			Genre:   genre,
			Revenue: revenue[genre],
			Share:   revenue[genre].Share(total),
		})
	}

	months := slices.Collect(maps.Keys(monthly))
	slices.SortFunc(months, func(a, b date.Date) int {
		if a.Before(b) {
			return -1
		}
		if a.After(b) {
			return 1
		}
		return 0
	})
	for _, month := range months {
		charts.MonthlyRevenue = append(charts.MonthlyRevenue, MonthRevenue{Month: month, Revenue: monthly[month]})
	}
	return charts, nil
}

// sortedKeys returns the keys of a string-keyed map in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
