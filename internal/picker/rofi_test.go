package picker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/emoti/internal/config"
	"github.com/muurk/emoti/internal/entries"
)

// fakeRofi writes a shell script that records its stdin and arguments and
// then runs body.
func fakeRofi(t *testing.T, body string) (path, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake rofi requires a POSIX shell")
	}

	dir = t.TempDir()
	path = filepath.Join(dir, "rofi")
	script := "#!/bin/sh\n" +
		"cat > \"" + filepath.Join(dir, "stdin") + "\"\n" +
		"echo \"$@\" > \"" + filepath.Join(dir, "args") + "\"\n" +
		body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path, dir
}

var testItems = []entries.DisplayEntry{
	{Index: 0, Key: "smile", Value: "🙂", Label: "<span>smile\t🙂</span>"},
	{Index: 1, Key: "heart", Value: "❤️", Label: "<span>heart\t❤️</span>"},
}

func TestRofiPick(t *testing.T) {
	path, dir := fakeRofi(t, "echo 1")

	r := NewRofi(RofiConfig{Path: path, Prompt: "pick"})
	got, err := r.Pick(context.Background(), testItems)
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Pick() = %d, want 1", got)
	}

	stdin, err := os.ReadFile(filepath.Join(dir, "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<span>smile\t🙂</span>\n<span>heart\t❤️</span>"; string(stdin) != want {
		t.Errorf("rofi stdin = %q, want %q", stdin, want)
	}

	args, err := os.ReadFile(filepath.Join(dir, "args"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(args), "-markup-rows") || !strings.Contains(string(args), "-p pick") {
		t.Errorf("rofi args = %q, want markup rows and prompt", args)
	}
}

func TestRofiPickMultiLineValueKeepsRows(t *testing.T) {
	cfg, err := config.Load([]byte(`
mappings:
  poem: |
    roses
    violets
  smile: "S"
  heart: "H"
  star: "T"
style: {}
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	items, err := entries.Format(cfg)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Choose the row that shows "smile", the way a user would
	path, dir := fakeRofi(t, `n=$(grep -n smile "$(dirname "$0")/stdin" | cut -d: -f1); echo $((n - 1))`)

	index, err := NewRofi(RofiConfig{Path: path}).Pick(context.Background(), items)
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if value, _ := cfg.ValueAt(index); value != "S" {
		t.Errorf("Pick() = %d (value %q), want the smile entry", index, value)
	}

	stdin, err := os.ReadFile(filepath.Join(dir, "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	if rows := strings.Count(string(stdin), "\n") + 1; rows != len(items) {
		t.Errorf("rofi received %d rows, want %d", rows, len(items))
	}
}

func TestRofiInputFlattensLabels(t *testing.T) {
	got := rofiInput([]entries.DisplayEntry{{Label: "a\nb"}, {Label: "c"}})
	if got != "a↵b\nc" {
		t.Errorf("rofiInput() = %q, want %q", got, "a↵b\nc")
	}
}

func TestRofiPickCancelled(t *testing.T) {
	path, _ := fakeRofi(t, "exit 1")

	_, err := NewRofi(RofiConfig{Path: path}).Pick(context.Background(), testItems)
	if !errors.Is(err, ErrNoSelection) {
		t.Errorf("Pick() error = %v, want ErrNoSelection", err)
	}
}

func TestRofiPickFailure(t *testing.T) {
	path, _ := fakeRofi(t, "echo 'cannot open display' >&2; exit 2")

	_, err := NewRofi(RofiConfig{Path: path}).Pick(context.Background(), testItems)
	var pickErr *Error
	if !errors.As(err, &pickErr) {
		t.Fatalf("Pick() error = %v, want *Error", err)
	}
	if pickErr.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", pickErr.ExitCode)
	}
	if pickErr.Stderr != "cannot open display" {
		t.Errorf("Stderr = %q", pickErr.Stderr)
	}
}

func TestRofiPickMissingBinary(t *testing.T) {
	r := NewRofi(RofiConfig{Path: filepath.Join(t.TempDir(), "no-such-rofi")})

	_, err := r.Pick(context.Background(), testItems)
	var pickErr *Error
	if !errors.As(err, &pickErr) {
		t.Fatalf("Pick() error = %v, want *Error", err)
	}
	if errors.Is(err, ErrNoSelection) {
		t.Error("a missing binary must not look like a cancellation")
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		output    string
		want      int
		wantErr   bool
		wantNoSel bool
	}{
		{output: "0", want: 0},
		{output: "2", want: 2},
		{output: "-1", wantNoSel: true},
		{output: "3", wantErr: true},
		{output: "-4", wantErr: true},
		{output: "smile", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseIndex(tt.output, 3)
		switch {
		case tt.wantNoSel:
			if !errors.Is(err, ErrNoSelection) {
				t.Errorf("parseIndex(%q) error = %v, want ErrNoSelection", tt.output, err)
			}
		case tt.wantErr:
			var pickErr *Error
			if !errors.As(err, &pickErr) {
				t.Errorf("parseIndex(%q) error = %v, want *Error", tt.output, err)
			}
		default:
			if err != nil || got != tt.want {
				t.Errorf("parseIndex(%q) = %d, %v; want %d", tt.output, got, err, tt.want)
			}
		}
	}
}

func TestRofiArgs(t *testing.T) {
	r := NewRofi(RofiConfig{Prompt: "emoti", ExtraArgs: []string{"-theme", "gruvbox"}})

	want := []string{"-dmenu", "-markup-rows", "-format", "i", "-no-custom", "-i", "-p", "emoti", "-theme", "gruvbox"}
	if diff := cmp.Diff(want, r.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"auto", "rofi", "terminal"} {
		if k, err := ParseKind(s); err != nil || string(k) != s {
			t.Errorf("ParseKind(%q) = %q, %v", s, k, err)
		}
	}
	if _, err := ParseKind("dmenu"); err == nil {
		t.Error("ParseKind(dmenu) should fail")
	}
}

func TestNewExplicitKinds(t *testing.T) {
	p, err := New(Options{Kind: KindRofi, RofiPath: "/opt/rofi", RofiArgs: []string{"-theme", "gruvbox"}})
	if err != nil {
		t.Fatalf("New(rofi) error = %v", err)
	}
	r, ok := p.(*Rofi)
	if !ok {
		t.Fatalf("New(rofi) = %T, want *Rofi", p)
	}
	if r.config.Path != "/opt/rofi" {
		t.Errorf("rofi path = %q, want /opt/rofi", r.config.Path)
	}
	if diff := cmp.Diff([]string{"-theme", "gruvbox"}, r.Args()[len(r.Args())-2:]); diff != "" {
		t.Errorf("rofi extra args mismatch (-want +got):\n%s", diff)
	}

	p, err = New(Options{Kind: KindTerminal})
	if err != nil {
		t.Fatalf("New(terminal) error = %v", err)
	}
	if _, ok := p.(*Terminal); !ok {
		t.Errorf("New(terminal) = %T, want *Terminal", p)
	}
}
