package config

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Style defaults applied when the style block omits a field.
const (
	DefaultFgColor  = "#eeeeee"
	DefaultFontSize = Small
)

// FontSize is one of the Pango font size levels supported by the picker.
type FontSize int

const (
	VeryTiny FontSize = iota
	Tiny
	Small
	Normal
	Large
	Huge
	VeryHuge
	Smaller // relative to the parent
	Larger  // relative to the parent
)

// fontSizeNames maps the lowercase configuration names to sizes.
var fontSizeNames = map[string]FontSize{
	"verytiny": VeryTiny,
	"tiny":     Tiny,
	"small":    Small,
	"normal":   Normal,
	"large":    Large,
	"huge":     Huge,
	"veryhuge": VeryHuge,
	"smaller":  Smaller,
	"larger":   Larger,
}

// ParseFontSize matches name case-insensitively against the known size names.
func ParseFontSize(name string) (FontSize, error) {
	if size, ok := fontSizeNames[strings.ToLower(name)]; ok {
		return size, nil
	}
	return 0, &Error{Kind: ErrInvalidFontSize, Field: "style.size", Value: name}
}

// Name returns the configuration name of the size (e.g. "verytiny").
func (s FontSize) Name() string {
	for name, size := range fontSizeNames {
		if size == s {
			return name
		}
	}
	return fmt.Sprintf("FontSize(%d)", int(s))
}

// String returns the Pango size attribute value for the size.
func (s FontSize) String() string {
	switch s {
	case VeryTiny:
		return "xx-small"
	case Tiny:
		return "x-small"
	case Small:
		return "small"
	case Normal:
		return "medium"
	case Large:
		return "large"
	case Huge:
		return "x-large"
	case VeryHuge:
		return "xx-large"
	case Smaller:
		return "smaller"
	case Larger:
		return "larger"
	default:
		return fmt.Sprintf("FontSize(%d)", int(s))
	}
}

// Style controls how entries are rendered in the picker.
type Style struct {
	FgColor string   // Foreground color, passed through to the display layer unchecked
	Size    FontSize // Font size level
}

// DefaultStyle returns the style used when the style block is empty.
func DefaultStyle() Style {
	return Style{
		FgColor: DefaultFgColor,
		Size:    DefaultFontSize,
	}
}

// Mapping is a single shortcode to snippet pair.
type Mapping struct {
	Key   string
	Value string
}

// Config is the validated configuration. The zero value has no mappings and
// the zero Style; use Load or New to build one.
type Config struct {
	mappings *orderedmap.OrderedMap[string, string]
	style    Style
}

// New builds a Config from mappings in the given order. Later duplicates of a
// key replace the earlier value but keep its position.
func New(mappings []Mapping, style Style) *Config {
	om := orderedmap.New[string, string](len(mappings))
	for _, m := range mappings {
		om.Set(m.Key, m.Value)
	}
	return &Config{mappings: om, style: style}
}

// Style returns the configured display style.
func (c *Config) Style() Style {
	return c.style
}

// Len returns the number of mappings.
func (c *Config) Len() int {
	if c.mappings == nil {
		return 0
	}
	return c.mappings.Len()
}

// Entries returns a copy of the mappings in iteration order.
// This order is the order entries are displayed and selected in.
func (c *Config) Entries() []Mapping {
	out := make([]Mapping, 0, c.Len())
	if c.mappings == nil {
		return out
	}
	for pair := c.mappings.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Mapping{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// ValueAt returns the value at position index in iteration order.
func (c *Config) ValueAt(index int) (string, bool) {
	if index < 0 || index >= c.Len() {
		return "", false
	}
	i := 0
	for pair := c.mappings.Oldest(); pair != nil; pair = pair.Next() {
		if i == index {
			return pair.Value, true
		}
		i++
	}
	return "", false
}
