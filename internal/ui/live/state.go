package live

import (
	"time"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

// RunStatus is the display state of one run.
type RunStatus string

const (
	RunPending    RunStatus = "pending"
	RunSimulating RunStatus = "simulating"
	RunChecking   RunStatus = "checking"
	RunParsing    RunStatus = "parsing"
	RunDone       RunStatus = "done"
	RunFailed     RunStatus = "failed"
)

// RunRow holds UI state for a single run.
type RunRow struct {
	Run        int
	Status     RunStatus
	Summary    *summary.RunSummary
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Pending  int
	Active   int
	Done     int
	Failed   int
	Warnings int
}

// State captures the live UI state for a session.
type State struct {
	SessionID string
	Requested int
	StartedAt time.Time
	LastEvent string
	Finished  bool
	Rows      []RunRow
	Counts    StatusCounts
}
