package bookstand

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// dune returns a ledger stocked with a single well-known book.
func dune() *Ledger {
	l := NewLedger()
	if err := l.AddBook("Dune", "Herbert", "Sci-Fi", USD(10.00), Q(5)); err != nil {
		panic(err.Error())
	}
	return l
}
