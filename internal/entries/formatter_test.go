package entries

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/emoti/internal/config"
)

func TestFormatSmileHeart(t *testing.T) {
	cfg, err := config.Load([]byte(`
mappings:
  smile: "🙂"
  heart: "❤️"
style:
  size: large
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, err := Format(cfg)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := []DisplayEntry{
		{
			Index: 0, Key: "smile", Value: "🙂", Text: "smile\t🙂",
			Label: `<span size="large" foreground="#eeeeee">smile` + "\t" + `🙂</span>`,
		},
		{
			Index: 1, Key: "heart", Value: "❤️", Text: "heart\t❤️",
			Label: `<span size="large" foreground="#eeeeee">heart` + "\t" + `❤️</span>`,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatAlignment(t *testing.T) {
	cfg := config.New([]config.Mapping{
		{Key: "a", Value: "1"},
		{Key: "longest", Value: "2"},
		{Key: "mid", Value: "3"},
		{Key: "", Value: "4"},
	}, config.DefaultStyle())

	got, err := Format(cfg)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if len(got) != cfg.Len() {
		t.Fatalf("len(Format()) = %d, want %d", len(got), cfg.Len())
	}

	for i, e := range got {
		if e.Index != i {
			t.Errorf("entry %d has Index %d", i, e.Index)
		}
		left, right, ok := strings.Cut(e.Text, "\t")
		if !ok {
			t.Fatalf("entry %q has no tab", e.Text)
		}
		if w := runewidth.StringWidth(left); w != len("longest") {
			t.Errorf("entry %d key segment %q width = %d, want %d", i, left, w, len("longest"))
		}
		if strings.TrimRight(left, " ") != e.Key {
			t.Errorf("entry %d key segment %q does not start with key %q", i, left, e.Key)
		}
		if right != e.Value {
			t.Errorf("entry %d value = %q, want %q", i, right, e.Value)
		}
	}
}

func TestFormatWideKeys(t *testing.T) {
	cfg := config.New([]config.Mapping{
		{Key: "猫", Value: "cat"},
		{Key: "dog", Value: "dog"},
	}, config.DefaultStyle())

	got, err := Format(cfg)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got[0].Text != "猫 \tcat" {
		t.Errorf("wide key text = %q, want %q", got[0].Text, "猫 \tcat")
	}
	if got[1].Text != "dog\tdog" {
		t.Errorf("ascii key text = %q, want %q", got[1].Text, "dog\tdog")
	}
}

func TestFormatEmpty(t *testing.T) {
	cfg := config.New(nil, config.DefaultStyle())

	_, err := Format(cfg)
	if !errors.Is(err, ErrEmptyMappings) {
		t.Errorf("Format() error = %v, want ErrEmptyMappings", err)
	}
}

func TestMarkupEscapes(t *testing.T) {
	style := config.Style{FgColor: `#fff"`, Size: config.Tiny}

	got := Markup("<b>&'", style)
	want := `<span size="x-small" foreground="#fff&quot;">&lt;b&gt;&amp;&#39;</span>`
	if got != want {
		t.Errorf("Markup() = %q, want %q", got, want)
	}
}

func TestLabels(t *testing.T) {
	got := Labels([]DisplayEntry{{Label: "a"}, {Label: "b"}})
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatMultiLineValue(t *testing.T) {
	cfg, err := config.Load([]byte(`
mappings:
  poem: |
    roses
    violets
  smile: "S"
  crlf: "a\r\nb"
style: {}
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got, err := Format(cfg)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(Format()) = %d, want 3", len(got))
	}

	wantText := []string{"poem \troses↵violets↵", "smile\tS", "crlf \ta↵b"}
	for i, e := range got {
		if e.Text != wantText[i] {
			t.Errorf("entry %d Text = %q, want %q", i, e.Text, wantText[i])
		}
		if strings.ContainsAny(e.Label, "\r\n") {
			t.Errorf("entry %d Label %q spans several lines", i, e.Label)
		}
	}

	if got[0].Value != "roses\nviolets\n" {
		t.Errorf("entry 0 Value = %q, want the original multi-line text", got[0].Value)
	}
	if v, ok := cfg.ValueAt(0); !ok || v != "roses\nviolets\n" {
		t.Errorf("ValueAt(0) = %q, %v; want the original multi-line text", v, ok)
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\nb", "a↵b"},
		{"a\r\nb", "a↵b"},
		{"a\rb\n", "a↵b↵"},
	}

	for _, tt := range tests {
		if got := SingleLine(tt.in); got != tt.want {
			t.Errorf("SingleLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
