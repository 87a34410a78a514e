// Package clipboard writes the chosen snippet to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/muurk/emoti/internal/logging"
)

// ErrUnsupported indicates no clipboard utility is available in this
// environment (e.g. no xclip, xsel or wl-copy on Linux).
var ErrUnsupported = errors.New("clipboard not available")

// Writer sets the clipboard text.
type Writer interface {
	WriteText(text string) error
}

// Error represents a failed clipboard write.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to use clipboard: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// System writes to the desktop clipboard through the platform's clipboard
// utility.
type System struct{}

// NewSystem returns the system clipboard writer.
func NewSystem() System {
	return System{}
}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return &Error{Err: ErrUnsupported}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return &Error{Err: err}
	}
	logging.Debug("Clipboard updated", zap.Int("bytes", len(text)))
	return nil
}

