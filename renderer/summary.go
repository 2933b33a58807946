// Package renderer turns report structures into markdown strings for the
// presentation layer to print.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/bookstand/bookstand"
)

// SummaryMarkdown renders the sales summary to a markdown string.
func SummaryMarkdown(s *bookstand.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Summary")
	doc.PlainText(fmt.Sprintf("Total Revenue: %s", s.TotalRevenue))

	doc.H2("Top Selling Books")
	table := md.TableSet{
		Header: []string{"Title", "Units Sold"},
		Rows:   [][]string{},
	}
	for _, t := range s.Titles {
		table.Rows = append(table.Rows, []string{t.Title, t.Units.String()})
	}
	doc.Table(table)

	return doc.String()
}
