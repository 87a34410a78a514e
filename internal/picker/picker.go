package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/emoti/internal/config"
	"github.com/muurk/emoti/internal/entries"
	"github.com/muurk/emoti/internal/logging"
)

// ErrNoSelection is returned when the user cancels the picker.
var ErrNoSelection = errors.New("no selection")

// Picker shows entries and returns the index of the chosen one.
type Picker interface {
	Pick(ctx context.Context, items []entries.DisplayEntry) (int, error)
}

// Error represents a picker failure other than cancellation.
type Error struct {
	Picker   string // "rofi" or "terminal"
	ExitCode int    // Process exit code, -1 if not applicable
	Stderr   string // Captured stderr output
	Output   string // Raw output that could not be interpreted
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s picker failed", e.Picker)
	if e.ExitCode > 0 {
		msg = fmt.Sprintf("%s (exit code %d)", msg, e.ExitCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Output != "" {
		msg = fmt.Sprintf("%s: unexpected output %q", msg, e.Output)
	}
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind selects a picker implementation.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindRofi     Kind = "rofi"
	KindTerminal Kind = "terminal"
)

// ParseKind validates a picker name from the command line.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindAuto, KindRofi, KindTerminal:
		return k, nil
	default:
		return "", fmt.Errorf("unknown picker %q (expected auto, rofi or terminal)", s)
	}
}

// Options configures New.
type Options struct {
	Kind     Kind
	RofiPath string
	RofiArgs []string // Appended to the rofi command line
	Style    config.Style
}

// New returns the picker selected by opts. KindAuto prefers rofi when it is
// on PATH and falls back to the terminal picker when stdin is a terminal.
func New(opts Options) (Picker, error) {
	rofiCfg := DefaultRofiConfig()
	if opts.RofiPath != "" {
		rofiCfg.Path = opts.RofiPath
	}
	rofiCfg.ExtraArgs = opts.RofiArgs

	switch opts.Kind {
	case KindRofi:
		return NewRofi(rofiCfg), nil
	case KindTerminal:
		return NewTerminal(opts.Style), nil
	case KindAuto, "":
		if path, err := exec.LookPath(rofiCfg.Path); err == nil {
			logging.Debug("Using rofi picker", zap.String("path", path))
			rofiCfg.Path = path
			return NewRofi(rofiCfg), nil
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			logging.Warn("rofi not found, using terminal picker", zap.String("rofi", rofiCfg.Path))
			return NewTerminal(opts.Style), nil
		}
		return nil, &Error{
			Picker:   string(KindAuto),
			ExitCode: -1,
			Err:      fmt.Errorf("%s not found in PATH and stdin is not a terminal", rofiCfg.Path),
		}
	default:
		return nil, fmt.Errorf("unknown picker %q", opts.Kind)
	}
}
