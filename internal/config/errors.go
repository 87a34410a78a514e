package config

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrIO indicates the configuration file could not be opened or read.
	ErrIO = errors.New("config io error")
	// ErrParse indicates the file is not well-formed YAML.
	ErrParse = errors.New("yaml parse error")
	// ErrShape indicates a required block is missing or is not a mapping.
	ErrShape = errors.New("invalid config shape")
	// ErrInvalidFontSize indicates an unrecognized style.size name.
	ErrInvalidFontSize = errors.New("invalid font size")
	// ErrPathResolution indicates no base directory could be determined
	// from the environment.
	ErrPathResolution = errors.New("unable to determine config path")
)

// Error describes a configuration failure.
type Error struct {
	Kind  error  // One of the Err* kinds above
	Path  string // Config file path, when known
	Field string // Offending field (e.g. "mappings", "style.size")
	Value string // Offending value (invalid font size name)
	Err   error  // Underlying error, if any
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	switch {
	case e.Kind == ErrInvalidFontSize:
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	case e.Field != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// InvalidFontSize returns the rejected size name if err is an
// ErrInvalidFontSize error.
func InvalidFontSize(err error) (string, bool) {
	var cfgErr *Error
	if errors.As(err, &cfgErr) && cfgErr.Kind == ErrInvalidFontSize {
		return cfgErr.Value, true
	}
	return "", false
}
