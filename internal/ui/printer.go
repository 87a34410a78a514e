package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muurk/emoti/internal/config"
	"github.com/muurk/emoti/internal/entries"
)

// Printer provides methods for printing command output to a writer.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used. Styling is applied only when styled is true,
// so piped output stays plain.
func NewPrinter(w io.Writer, styled bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: w, styled: styled}
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintEntries prints one aligned line per entry. The key column is padded
// with spaces instead of the picker's tab.
func (p *Printer) PrintEntries(items []entries.DisplayEntry, style config.Style) {
	entryStyle := EntryStyle(style)
	for _, e := range items {
		line := strings.Replace(e.Text, "\t", "  ", 1)
		if p.styled {
			line = entryStyle.Render(line)
		}
		p.Println(line)
	}
}

// PrintError prints a one-line diagnostic.
func (p *Printer) PrintError(err error) {
	if !p.styled {
		p.Println("Error: " + err.Error())
		return
	}
	p.Println(ErrorLabelStyle.Render("Error:") + " " + ErrorMessageStyle.Render(err.Error()))
}

// PrintMuted prints secondary information.
func (p *Printer) PrintMuted(content string) {
	if p.styled {
		content = MutedStyle.Render(content)
	}
	p.Println(content)
}
