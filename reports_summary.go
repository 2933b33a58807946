package bookstand

// Summary provides an at-a-glance overview of the accumulated sales: the
// grand total revenue and the units sold per title.
type Summary struct {
	TotalRevenue Money
	Titles       []TitleUnits // in title-sorted order
}

// TitleUnits is the total units sold for one title.
type TitleUnits struct {
	Title string
	Units Quantity
}

// NewSummary computes the sales summary from the ledger. It returns
// ErrNoSales when no sale has been recorded yet.
func NewSummary(ledger *Ledger) (*Summary, error) {
	if !ledger.HasSales() {
		return nil, ErrNoSales
	}

	summary := &Summary{}
	byTitle := make(map[string]Quantity)
	for sale := range ledger.Sales() {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Revenue)
		byTitle[sale.Title] = byTitle[sale.Title].Add(sale.Quantity)
	}

	for _, title := range sortedKeys(byTitle) {
		summary.Titles = append(summary.Titles, TitleUnits{Title: title, Units: byTitle[title]})
	}
	return summary, nil
}
