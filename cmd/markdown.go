package cmd

import (
	"fmt"
	"io"

	"github.com/etnz/stockhist/renderer"
)

// terminalWidth is the word wrap width of markdown printed to the terminal.
const terminalWidth = 100

// printMarkdown prints markdown for a terminal, or as is if it cannot be styled.
func printMarkdown(w io.Writer, md string) {
	out, err := renderer.Terminal(md, terminalWidth)
	if err != nil {
		out = md
	}
	fmt.Fprint(w, out)
}
