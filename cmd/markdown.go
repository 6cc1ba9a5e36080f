package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown renders md on the standard output.
func printMarkdown(md string) {
	if err := printMarkdownTo(os.Stdout, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
	}
}

// printMarkdownTo renders md for a terminal. When w is not a terminal md is
// written as is.
func printMarkdownTo(w io.Writer, md string) error {
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
