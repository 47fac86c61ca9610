package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

// RunFailure records a run that produced no summary.
type RunFailure struct {
	Run   int    `json:"run"`
	Stage Stage  `json:"stage"`
	Error string `json:"error"`
}

// Session is the outcome of a multi-run invocation.
type Session struct {
	ID         string         `json:"session_id"`
	Revision   trace.Revision `json:"grammar"`
	Requested  int            `json:"runs_requested"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Table      *Table         `json:"summaries"`
	Failures   []RunFailure   `json:"failures"`
}

// Succeeded returns the number of runs that produced a summary.
func (s Session) Succeeded() int {
	return s.Table.Len()
}

// Failed returns the number of runs that produced no summary.
func (s Session) Failed() int {
	return len(s.Failures)
}

// Err returns ErrRunFailed wrapped with the failure count, or nil.
func (s Session) Err() error {
	if len(s.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d runs failed", ErrRunFailed, len(s.Failures), s.Requested)
}

// WriteSessionJSON writes the session as pretty JSON to dir/results.json.
func WriteSessionJSON(session Session, dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	path := ResultsPath(dir)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
