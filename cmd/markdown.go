package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report for the terminal and writes it to w.
// If the terminal renderer fails, the raw markdown is written instead.
func printMarkdown(w io.Writer, markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Fprintln(w, markdown)
		return
	}
	fmt.Fprint(w, out)
}
