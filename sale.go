package bookstand

import "github.com/bookstand/bookstand/date"

// Sale is a row of the sales log: one completed transaction. Sales are
// append-only; once recorded they are never edited or deleted.
//
// Revenue is the price at the moment of sale times the quantity sold. Later
// price changes never retroactively affect it.
type Sale struct {
	Date     date.Date
	Title    string
	Quantity Quantity
	Revenue  Money
}
