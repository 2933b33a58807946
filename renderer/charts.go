package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/bookstand/bookstand"
)

// barWidth is the width of the widest bar, in characters.
const barWidth = 20

// ChartsMarkdown renders the chart aggregates as markdown: a bar chart of
// units per genre, a revenue share table per genre, and the monthly revenue
// trend.
func ChartsMarkdown(c *bookstand.Charts) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Charts")

	doc.H2("Sales by Genre")
	var maxUnits float64
	for _, g := range c.UnitsByGenre {
		if u := g.Units.AsFloat(); u > maxUnits {
			maxUnits = u
		}
	}
	units := md.TableSet{
		Header: []string{"Genre", "Units", ""},
		Rows:   [][]string{},
	}
	for _, g := range c.UnitsByGenre {
		units.Rows = append(units.Rows, []string{g.Genre, g.Units.String(), bar(g.Units.AsFloat(), maxUnits)})
	}
	doc.Table(units)

	doc.H2("Revenue Share by Genre")
	shares := md.TableSet{
		Header: []string{"Genre", "Revenue", "Share"},
		Rows:   [][]string{},
	}
	for _, g := range c.RevenueByGenre {
		shares.Rows = append(shares.Rows, []string{g.Genre, g.Revenue.String(), g.Share.String()})
	}
	doc.Table(shares)

	doc.H2("Monthly Revenue Trend")
	var maxRevenue bookstand.Money
	for _, m := range c.MonthlyRevenue {
		if m.Revenue.GreaterThan(maxRevenue) {
			maxRevenue = m.Revenue
		}
	}
	monthly := md.TableSet{
		Header: []string{"Month", "Revenue", ""},
		Rows:   [][]string{},
	}
	for _, m := range c.MonthlyRevenue {
		label := fmt.Sprintf("%s %d", m.Month.Month().String()[:3], m.Month.Year())
		monthly.Rows = append(monthly.Rows, []string{
			label,
			m.Revenue.String(),
			bar(float64(m.Revenue.Share(maxRevenue)), 100),
		})
	}
	doc.Table(monthly)

	return doc.String()
}

// bar renders a value as a proportional run of block characters.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n == 0 {
		n = 1 // a non-zero value always shows
	}
	return strings.Repeat("█", n)
}
