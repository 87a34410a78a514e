package picker

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/emoti/internal/entries"
	"github.com/muurk/emoti/internal/logging"
)

// rofiCancelExitCode is rofi's exit status when the menu is dismissed.
const rofiCancelExitCode = 1

// RofiConfig holds the configuration for running rofi.
type RofiConfig struct {
	// Path is the rofi binary. Default: "rofi" (searches PATH)
	Path string

	// Prompt is shown to the left of the input field.
	// Default: "emoti"
	Prompt string

	// ExtraArgs are appended to the rofi command line.
	ExtraArgs []string
}

// DefaultRofiConfig returns a RofiConfig with sensible defaults.
func DefaultRofiConfig() RofiConfig {
	return RofiConfig{
		Path:   "rofi",
		Prompt: "emoti",
	}
}

// Rofi picks entries with rofi in dmenu mode.
type Rofi struct {
	config RofiConfig
}

// NewRofi creates a rofi picker.
func NewRofi(config RofiConfig) *Rofi {
	return &Rofi{config: config}
}

// Args returns the rofi arguments used for a pick.
func (r *Rofi) Args() []string {
	args := []string{
		"-dmenu",
		"-markup-rows", // rows are Pango markup
		"-format", "i", // print the selected row index
		"-no-custom",
		"-i", // case-insensitive matching
		"-p", r.config.Prompt,
	}
	return append(args, r.config.ExtraArgs...)
}

// Pick shows the entry labels in rofi and returns the chosen index.
func (r *Rofi) Pick(ctx context.Context, items []entries.DisplayEntry) (int, error) {
	cmd := exec.CommandContext(ctx, r.config.Path, r.Args()...)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(rofiInput(items))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debug("Running rofi",
		zap.String("path", r.config.Path),
		zap.Strings("args", r.Args()),
		zap.Int("entries", len(items)),
	)

	err := cmd.Run()
	output := strings.TrimSpace(stdout.String())

	logging.Debug("rofi finished",
		zap.String("stdout", output),
		zap.String("stderr", stderr.String()),
		zap.Error(err),
	)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() == rofiCancelExitCode && output == "" {
				return -1, ErrNoSelection
			}
			return -1, &Error{
				Picker:   string(KindRofi),
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				Err:      err,
			}
		}
		// Failed to start or killed through ctx
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return -1, &Error{Picker: string(KindRofi), ExitCode: -1, Err: err}
	}

	if output == "" {
		return -1, ErrNoSelection
	}

	return parseIndex(output, len(items))
}

// rofiInput renders one row per entry. rofi reads rows line by line, so a
// stray line break would shift the indices of every later row.
func rofiInput(items []entries.DisplayEntry) string {
	labels := entries.Labels(items)
	for i, label := range labels {
		labels[i] = entries.SingleLine(label)
	}
	return strings.Join(labels, "\n")
}

// parseIndex interprets rofi's "-format i" output.
func parseIndex(output string, count int) (int, error) {
	index, err := strconv.Atoi(output)
	if err != nil {
		return -1, &Error{Picker: string(KindRofi), ExitCode: -1, Output: output, Err: err}
	}
	// rofi prints -1 when the input matched no row
	if index == -1 {
		return -1, ErrNoSelection
	}
	if index < 0 || index >= count {
		return -1, &Error{Picker: string(KindRofi), ExitCode: -1, Output: output}
	}
	return index, nil
}
