package bookstand

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/bookstand/bookstand/date"
)

func tempStore(t *testing.T) Store {
	t.Helper()
	dir := t.TempDir()
	return Store{
		InventoryFile: filepath.Join(dir, "inventory.csv"),
		SalesFile:     filepath.Join(dir, "sales.csv"),
	}
}

func TestStore_Load_MissingFiles(t *testing.T) {
	s := tempStore(t)
	l := s.Load()

	if got := len(slices.Collect(l.Books())); got != 0 {
		t.Errorf("loaded %d books from missing files, want 0", got)
	}
	if l.HasSales() {
		t.Error("loaded sales from missing files, want none")
	}
}

func TestStore_Load_MalformedFiles(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.InventoryFile, []byte("not,a,valid\ninventory"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.SalesFile, []byte("Date,Title,Quantity Sold,Total Revenue\nyesterday,Dune,two,much\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Both parse failures are recovered to empty, well-shaped tables.
	l := s.Load()
	if got := len(slices.Collect(l.Books())); got != 0 {
		t.Errorf("loaded %d books from a malformed file, want 0", got)
	}
	if l.HasSales() {
		t.Error("loaded sales from a malformed file, want none")
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)

	l := NewLedger()
	l.AddBook("Dune", "Herbert", "Sci-Fi", USD(10.00), Q(5))
	if _, err := l.RecordSale(date.MustParse("2024-01-01"), "Dune", Q(4)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(l); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := s.Load()
	b := reloaded.Book("Dune")
	if b == nil {
		t.Fatal("reloaded ledger is missing Dune")
	}
	if !b.Quantity.Equal(Q(1)) || !b.Price.Equal(USD(10.00)) {
		t.Errorf("reloaded book = %+v, want quantity 1 and price $10.00", b)
	}

	sales := slices.Collect(reloaded.Sales())
	if len(sales) != 1 {
		t.Fatalf("reloaded %d sales, want 1", len(sales))
	}
	want := Sale{Date: date.MustParse("2024-01-01"), Title: "Dune", Quantity: Q(4), Revenue: USD(40.00)}
	got := sales[0]
	if got.Date != want.Date || got.Title != want.Title ||
		!got.Quantity.Equal(want.Quantity) || !got.Revenue.Equal(want.Revenue) {
		t.Errorf("reloaded sale = %+v, want %+v", got, want)
	}
}

func TestStore_Save_BadPath(t *testing.T) {
	s := Store{
		InventoryFile: filepath.Join(t.TempDir(), "no", "such", "dir", "inventory.csv"),
		SalesFile:     filepath.Join(t.TempDir(), "sales.csv"),
	}
	if err := s.Save(NewLedger()); err == nil {
		t.Error("Save() to an unwritable path = nil, want error")
	}
}
