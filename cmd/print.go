package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document to the terminal. When rendering
// fails the raw markdown is still readable, so print it as-is.
func printMarkdown(s string) {
	out, err := glamour.Render(s, "auto")
	if err != nil {
		fmt.Print(s)
		return
	}
	fmt.Print(out)
}
