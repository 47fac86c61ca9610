package runner

import (
	"errors"
	"fmt"
)

// ErrRunFailed is wrapped by Session.Err when at least one run failed.
var ErrRunFailed = errors.New("simulation run failed")

// Stage identifies a step of a run.
type Stage string

const (
	StageSimulate Stage = "simulate"
	StageCheck    Stage = "check"
	StageParse    Stage = "parse"
)

// StageError attributes a failure to a run and the step that failed.
type StageError struct {
	Run   int
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("run %d: %s: %v", e.Run, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
