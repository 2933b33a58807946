package bookstand

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/bookstand/bookstand/date"
)

const inventoryCSV = `Title,Author,Genre,Price,Quantity
Dune,Herbert,Sci-Fi,10.5,5
Emma,Austen,Romance,8,12
`

const salesCSV = `Date,Title,Quantity Sold,Total Revenue
2024-01-05,Dune,2,21
2024-02-01,Emma,1,8
`

func TestDecodeInventory(t *testing.T) {
	books, err := DecodeInventory(strings.NewReader(inventoryCSV))
	if err != nil {
		t.Fatalf("DecodeInventory() error = %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("decoded %d books, want 2", len(books))
	}
	want := Book{Title: "Dune", Author: "Herbert", Genre: "Sci-Fi", Price: USD(10.5), Quantity: Q(5)}
	got := books[0]
	if got.Title != want.Title || got.Author != want.Author || got.Genre != want.Genre ||
		!got.Price.Equal(want.Price) || !got.Quantity.Equal(want.Quantity) {
		t.Errorf("books[0] = %+v, want %+v", got, want)
	}
}

func TestDecodeInventory_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{
			name: "duplicate title",
			in:   "Title,Author,Genre,Price,Quantity\nDune,a,g,1,1\nDune,b,h,2,2\n",
		},
		{
			name: "bad header",
			in:   "Titre,Auteur,Genre,Prix,Stock\n",
		},
		{
			name: "bad price",
			in:   "Title,Author,Genre,Price,Quantity\nDune,a,g,cheap,1\n",
		},
		{
			name: "fractional quantity",
			in:   "Title,Author,Genre,Price,Quantity\nDune,a,g,1,0.5\n",
		},
		{
			name: "missing column",
			in:   "Title,Author,Genre,Price,Quantity\nDune,a,g,1\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeInventory(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeInventory() = nil, want a format error")
			}
		})
	}
}

func TestDecodeInventory_Empty(t *testing.T) {
	books, err := DecodeInventory(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeInventory(\"\") error = %v", err)
	}
	if len(books) != 0 {
		t.Errorf("decoded %d books from an empty stream, want 0", len(books))
	}
}

func TestDecodeSales(t *testing.T) {
	sales, err := DecodeSales(strings.NewReader(salesCSV))
	if err != nil {
		t.Fatalf("DecodeSales() error = %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("decoded %d sales, want 2", len(sales))
	}
	want := Sale{Date: date.MustParse("2024-01-05"), Title: "Dune", Quantity: Q(2), Revenue: USD(21)}
	got := sales[0]
	if got.Date != want.Date || got.Title != want.Title ||
		!got.Quantity.Equal(want.Quantity) || !got.Revenue.Equal(want.Revenue) {
		t.Errorf("sales[0] = %+v, want %+v", got, want)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	l := NewLedger()
	l.AddBook("Dune", "Herbert", "Sci-Fi", USD(10.50), Q(5))
	l.AddBook("Emma", "Austen", "Romance", USD(8.00), Q(12))
	if _, err := l.RecordSale(date.MustParse("2024-01-05"), "Dune", Q(2)); err != nil {
		t.Fatal(err)
	}

	var inv, sal bytes.Buffer
	if err := EncodeInventory(&inv, l); err != nil {
		t.Fatalf("EncodeInventory() error = %v", err)
	}
	if err := EncodeSales(&sal, l); err != nil {
		t.Fatalf("EncodeSales() error = %v", err)
	}

	books, err := DecodeInventory(&inv)
	if err != nil {
		t.Fatalf("DecodeInventory() error = %v", err)
	}
	sales, err := DecodeSales(&sal)
	if err != nil {
		t.Fatalf("DecodeSales() error = %v", err)
	}

	reloaded := NewLedgerFrom(books, sales)
	got := slices.Collect(reloaded.Books())
	want := slices.Collect(l.Books())
	if len(got) != len(want) {
		t.Fatalf("reloaded %d books, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i].Title || !got[i].Price.Equal(want[i].Price) ||
			!got[i].Quantity.Equal(want[i].Quantity) {
			t.Errorf("books[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	gotSales := slices.Collect(reloaded.Sales())
	if len(gotSales) != 1 || !gotSales[0].Revenue.Equal(USD(21.00)) {
		t.Errorf("reloaded sales = %+v, want one row of $21.00", gotSales)
	}
}

func TestEncodeInventory_TitleSorted(t *testing.T) {
	l := NewLedger()
	l.AddBook("Zorba", "Kazantzakis", "Fiction", USD(9), Q(1))
	l.AddBook("Amok", "Zweig", "Fiction", USD(7), Q(1))

	var buf bytes.Buffer
	if err := EncodeInventory(&buf, l); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("encoded %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Amok,") || !strings.HasPrefix(lines[2], "Zorba,") {
		t.Errorf("rows are not title-sorted: %q", lines[1:])
	}
}
