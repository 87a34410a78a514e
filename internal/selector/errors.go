package selector

import "fmt"

// Stage names a step of the pick flow.
type Stage string

const (
	StageResolvePath Stage = "resolve config path"
	StageLoadConfig  Stage = "load config"
	StageFormat      Stage = "format entries"
	StagePresent     Stage = "present picker"
	StageCommit      Stage = "copy to clipboard"
	StageHold        Stage = "hold clipboard"
)

// StageError reports which stage of the flow failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
