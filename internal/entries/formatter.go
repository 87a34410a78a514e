package entries

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/muurk/emoti/internal/config"
)

// ErrEmptyMappings is returned when there is nothing to display, so no
// column width can be computed.
var ErrEmptyMappings = errors.New("no mappings to display")

// DisplayEntry is one formatted line of the picker.
type DisplayEntry struct {
	Index int    // Position in the config's iteration order
	Key   string // Mapping key
	Value string // Mapping value
	Text  string // Padded "key\tvalue" line without markup, always a single line
	Label string // Text wrapped in Pango markup
}

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// lineBreaks turns line breaks into a visible marker so one entry is one row.
var lineBreaks = strings.NewReplacer(
	"\r\n", "↵",
	"\n", "↵",
	"\r", "↵",
)

// SingleLine replaces line breaks in s with "↵". Line-based pickers show one
// row per line, so a multi-line value would shift every later row.
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}

// KeyWidth returns the display width of the widest key.
func KeyWidth(mappings []config.Mapping) (int, error) {
	if len(mappings) == 0 {
		return 0, ErrEmptyMappings
	}
	width := 0
	for _, m := range mappings {
		if w := runewidth.StringWidth(SingleLine(m.Key)); w > width {
			width = w
		}
	}
	return width, nil
}

// PadKey right-pads key with spaces to width display columns.
func PadKey(key string, width int) string {
	if pad := width - runewidth.StringWidth(key); pad > 0 {
		return key + strings.Repeat(" ", pad)
	}
	return key
}

// Markup wraps text in a Pango span for style. The text is escaped.
func Markup(text string, style config.Style) string {
	return fmt.Sprintf(`<span size="%s" foreground="%s">%s</span>`,
		style.Size, markupEscaper.Replace(style.FgColor), markupEscaper.Replace(text))
}

// Format builds the display entries for cfg in iteration order.
func Format(cfg *config.Config) ([]DisplayEntry, error) {
	mappings := cfg.Entries()

	width, err := KeyWidth(mappings)
	if err != nil {
		return nil, err
	}

	style := cfg.Style()
	out := make([]DisplayEntry, len(mappings))
	for i, m := range mappings {
		// Value keeps the real text; only the displayed line is flattened
		text := PadKey(SingleLine(m.Key), width) + "\t" + SingleLine(m.Value)
		out[i] = DisplayEntry{
			Index: i,
			Key:   m.Key,
			Value: m.Value,
			Text:  text,
			Label: Markup(text, style),
		}
	}

	return out, nil
}

// Labels returns the markup labels of entries in order.
func Labels(entries []DisplayEntry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}
