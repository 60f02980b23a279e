package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. If the terminal
// renderer fails the raw markdown is printed instead, the report must
// always come out.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
