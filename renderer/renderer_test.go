package renderer

import (
	"strings"
	"testing"

	"github.com/bookstand/bookstand"
	"github.com/bookstand/bookstand/date"
)

func ledgerWithSales(t *testing.T) *bookstand.Ledger {
	t.Helper()
	l := bookstand.NewLedger()
	l.AddBook("Dune", "Herbert", "Sci-Fi", bookstand.M(10.00, "USD"), bookstand.Q(5))
	l.AddBook("Emma", "Austen", "Romance", bookstand.M(8.00, "USD"), bookstand.Q(5))
	if _, err := l.RecordSale(date.MustParse("2024-01-05"), "Dune", bookstand.Q(4)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordSale(date.MustParse("2024-02-01"), "Emma", bookstand.Q(2)); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSummaryMarkdown(t *testing.T) {
	s, err := bookstand.NewSummary(ledgerWithSales(t))
	if err != nil {
		t.Fatal(err)
	}

	got := SummaryMarkdown(s)
	for _, want := range []string{"Sales Summary", "Total Revenue: $56.00", "Top Selling Books", "Dune", "Emma"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	// The per-title units must come out as markdown table rows.
	var rows int
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "|") && strings.Contains(line, "4") && strings.Contains(line, "Dune") {
			rows++
		}
	}
	if rows != 1 {
		t.Errorf("SummaryMarkdown() has %d table rows for Dune, want 1:\n%s", rows, got)
	}
}

func TestChartsMarkdown(t *testing.T) {
	c, err := bookstand.NewCharts(ledgerWithSales(t))
	if err != nil {
		t.Fatal(err)
	}

	got := ChartsMarkdown(c)
	for _, want := range []string{
		"Sales by Genre",
		"Revenue Share by Genre",
		"Monthly Revenue Trend",
		"Sci-Fi",
		"Romance",
		"Jan 2024",
		"Feb 2024",
		"█",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ChartsMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		max   float64
		want  int // rune count
	}{
		{name: "full", value: 10, max: 10, want: barWidth},
		{name: "half", value: 5, max: 10, want: barWidth / 2},
		{name: "zero", value: 0, max: 10, want: 0},
		{name: "tiny but visible", value: 0.01, max: 100, want: 1},
		{name: "no max", value: 5, max: 0, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.Count(bar(tc.value, tc.max), "█")
			if got != tc.want {
				t.Errorf("bar(%v, %v) has %d blocks, want %d", tc.value, tc.max, got, tc.want)
			}
		})
	}
}

func TestSale(t *testing.T) {
	s := bookstand.Sale{
		Date:     date.MustParse("2024-01-05"),
		Title:    "Dune",
		Quantity: bookstand.Q(4),
		Revenue:  bookstand.M(40.00, "USD"),
	}
	got := Sale(s)
	if got != `Sold 4 of "Dune" on 2024-01-05 for $40.00` {
		t.Errorf("Sale() = %q", got)
	}
}
