package selector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/emoti/internal/clipboard"
	"github.com/muurk/emoti/internal/config"
	"github.com/muurk/emoti/internal/entries"
	"github.com/muurk/emoti/internal/logging"
	"github.com/muurk/emoti/internal/picker"
)

// DefaultHold is how long the process stays alive after copying.
const DefaultHold = 60 * time.Second

// Outcome is the terminal state of a successful run.
type Outcome int

const (
	// OutcomeCopied means a value was written to the clipboard.
	OutcomeCopied Outcome = iota
	// OutcomeCancelled means the user dismissed the picker.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// PickerFactory builds the picker once the style is known.
type PickerFactory func(style config.Style) (picker.Picker, error)

// Config holds the collaborators and settings of a run.
type Config struct {
	// ConfigPath overrides path resolution when set.
	ConfigPath string

	// OnPath is called with the config path before it is loaded.
	OnPath func(path string)

	// Env is used for path resolution. Default: os.LookupEnv
	Env config.Env

	// NewPicker builds the picker. Required.
	NewPicker PickerFactory

	// Clipboard receives the chosen value. Default: clipboard.System
	Clipboard clipboard.Writer

	// Hold is how long to stay alive after copying. Zero disables the hold.
	Hold time.Duration

	// After waits for a duration. Default: a context-aware timer
	After func(ctx context.Context, d time.Duration) error
}

// Result describes a completed run.
type Result struct {
	Outcome Outcome
	Path    string
	Index   int    // Chosen index, -1 when cancelled
	Value   string // Copied value
}

// Selector runs the pick flow.
type Selector struct {
	config Config
	logger *zap.Logger
}

// New creates a Selector, filling in defaults for unset fields.
func New(cfg Config, logger *zap.Logger) *Selector {
	if cfg.Env == nil {
		cfg.Env = os.LookupEnv
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.NewSystem()
	}
	if cfg.After == nil {
		cfg.After = sleep
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{config: cfg, logger: logger}
}

// Run executes the flow. Cancellation in the picker is not an error: it
// returns OutcomeCancelled without touching the clipboard.
func (s *Selector) Run(ctx context.Context) (*Result, error) {
	result := &Result{Index: -1}

	// Resolve path
	path := s.config.ConfigPath
	if path == "" {
		if err := s.run(StageResolvePath, func() error {
			var err error
			path, err = config.ResolvePath(s.config.Env)
			return err
		}); err != nil {
			return nil, err
		}
	}
	result.Path = path
	if s.config.OnPath != nil {
		s.config.OnPath(path)
	}

	// Load config
	var cfg *config.Config
	if err := s.run(StageLoadConfig, func() error {
		var err error
		cfg, err = config.LoadFile(path)
		return err
	}); err != nil {
		return nil, err
	}

	// Format entries
	var items []entries.DisplayEntry
	if err := s.run(StageFormat, func() error {
		var err error
		items, err = entries.Format(cfg)
		return err
	}); err != nil {
		return nil, err
	}

	// Present
	var index int
	err := s.run(StagePresent, func() error {
		p, err := s.config.NewPicker(cfg.Style())
		if err != nil {
			return err
		}
		index, err = p.Pick(ctx, items)
		return err
	})
	if isCancelled(err) {
		s.logger.Info("Selection cancelled")
		result.Outcome = OutcomeCancelled
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	// Commit
	value, ok := cfg.ValueAt(index)
	if !ok {
		return nil, &StageError{
			Stage: StagePresent,
			Err:   &picker.Error{Picker: "picker", ExitCode: -1, Output: fmt.Sprint(index)},
		}
	}
	if err := s.run(StageCommit, func() error {
		return s.config.Clipboard.WriteText(value)
	}); err != nil {
		return nil, err
	}
	result.Outcome = OutcomeCopied
	result.Index = index
	result.Value = value

	s.logger.Info("Copied to clipboard",
		zap.Int("index", index),
		zap.String("key", items[index].Key),
	)

	// Hold
	if s.config.Hold > 0 {
		s.logger.Debug("Holding clipboard", zap.Duration("duration", s.config.Hold))
		if err := s.config.After(ctx, s.config.Hold); err != nil {
			// Interrupted hold still leaves the value copied
			s.logger.Warn("Clipboard hold interrupted", zap.Error(err))
		}
	}

	return result, nil
}

// run executes fn as stage, logging it and wrapping its error.
func (s *Selector) run(stage Stage, fn func() error) error {
	started := time.Now()
	logging.LogStage(string(stage))

	err := fn()
	if isCancelled(err) {
		logging.LogStageDone(string(stage), started, nil)
	} else {
		logging.LogStageDone(string(stage), started, err)
	}
	if err != nil {
		return &StageError{Stage: stage, Err: err}
	}
	return nil
}

func isCancelled(err error) bool {
	return errors.Is(err, picker.ErrNoSelection)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
