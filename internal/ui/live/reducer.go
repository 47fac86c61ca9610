package live

import (
	"fmt"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
)

// Reduce applies a session event to the UI state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventSessionStart:
		state = State{
			SessionID: event.SessionID,
			Requested: event.Runs,
			StartedAt: event.EmittedAt,
			Rows:      pendingRows(event.Runs),
		}
	case EventRunStart:
		state = ensureRow(state, event.Run)
		state = updateRow(state, event.Run, func(row RunRow) RunRow {
			row.Status = RunSimulating
			row.StartedAt = event.EmittedAt
			return row
		})
	case EventRunStage:
		state = ensureRow(state, event.Run)
		state = updateRow(state, event.Run, func(row RunRow) RunRow {
			row.Status = statusForStage(event.Stage)
			return row
		})
	case EventRunEnd:
		state = ensureRow(state, event.Run)
		state = updateRow(state, event.Run, func(row RunRow) RunRow {
			row.FinishedAt = event.EmittedAt
			if event.Error != "" {
				row.Status = RunFailed
				row.Error = event.Error
				return row
			}
			row.Status = RunDone
			row.Summary = event.Summary
			return row
		})
	case EventSessionEnd:
		state.Finished = true
	}
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// pendingRows creates one pending row per requested run.
func pendingRows(runs int) []RunRow {
	if runs <= 0 {
		return nil
	}
	rows := make([]RunRow, runs)
	for i := range rows {
		rows[i] = RunRow{Run: i + 1, Status: RunPending}
	}
	return rows
}

// ensureRow grows the state rows to include the 1-based run.
func ensureRow(state State, run int) State {
	if run <= len(state.Rows) || run <= 0 {
		return state
	}
	rows := make([]RunRow, run)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = RunRow{Run: i + 1, Status: RunPending}
	}
	state.Rows = rows
	return state
}

func updateRow(state State, run int, fn func(RunRow) RunRow) State {
	if run <= 0 || run > len(state.Rows) {
		return state
	}
	rows := make([]RunRow, len(state.Rows))
	copy(rows, state.Rows)
	rows[run-1] = fn(rows[run-1])
	state.Rows = rows
	return state
}

func statusForStage(stage runner.Stage) RunStatus {
	switch stage {
	case runner.StageSimulate:
		return RunSimulating
	case runner.StageCheck:
		return RunChecking
	case runner.StageParse:
		return RunParsing
	default:
		return RunPending
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []RunRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case RunPending:
			counts.Pending++
		case RunSimulating, RunChecking, RunParsing:
			counts.Active++
		case RunDone:
			counts.Done++
			if row.Summary != nil && len(row.Summary.Warnings) > 0 {
				counts.Warnings++
			}
		case RunFailed:
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event Event) string {
	switch event.Kind {
	case EventRunStage:
		return fmt.Sprintf("run %d %s", event.Run, event.Stage)
	case EventRunEnd:
		if event.Error != "" {
			return fmt.Sprintf("run %d failed: %s", event.Run, event.Error)
		}
		if event.Summary != nil && len(event.Summary.Warnings) > 0 {
			return fmt.Sprintf("run %d completed with %d warning(s)", event.Run, len(event.Summary.Warnings))
		}
		return fmt.Sprintf("run %d completed", event.Run)
	case EventSessionEnd:
		return "session finished"
	}
	return ""
}
