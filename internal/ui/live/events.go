package live

import (
	"time"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventSessionStart signals the start of a session.
	EventSessionStart EventKind = iota
	// EventRunStart signals the start of a run.
	EventRunStart
	// EventRunStage signals a run entering a stage.
	EventRunStage
	// EventRunEnd signals run completion.
	EventRunEnd
	// EventSessionEnd signals that every run has been attempted.
	EventSessionEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	SessionID string
	Runs      int
	Run       int
	Stage     runner.Stage
	Summary   *summary.RunSummary
	Error     string
	EmittedAt time.Time
}
