package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

// Dependencies allows injecting identifiers and clocks for a session.
type Dependencies struct {
	SessionID func() string
	Now       func() time.Time
}

// Params configures a session of runs.
type Params struct {
	Runs      int
	OutputDir string
	Revision  trace.Revision
	// FailFast stops the session after the first failed run.
	FailFast bool
	Observer RunObserver
	Deps     Dependencies
}

// Driver executes runs one after another and collects their summaries.
type Driver struct {
	Executor Executor
}

// Run executes params.Runs runs in order. A failed run contributes no row
// and is recorded in Session.Failures; the returned error is reserved for
// problems that prevent the session itself (bad params, cancellation).
func (d Driver) Run(ctx context.Context, params Params) (Session, error) {
	if d.Executor == nil {
		return Session{}, errors.New("runner: executor is nil")
	}
	if params.Runs <= 0 {
		return Session{}, fmt.Errorf("runner: run count must be positive, got %d", params.Runs)
	}
	if params.OutputDir == "" {
		return Session{}, errors.New("runner: output directory is required")
	}
	// Artifact paths are absolute: commands run in their own directories.
	outputDir, err := filepath.Abs(params.OutputDir)
	if err != nil {
		return Session{}, fmt.Errorf("resolve output dir: %w", err)
	}
	params.OutputDir = outputDir
	if err := os.MkdirAll(params.OutputDir, 0o755); err != nil {
		return Session{}, fmt.Errorf("create output dir: %w", err)
	}

	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	newID := params.Deps.SessionID
	if newID == nil {
		newID = uuid.NewString
	}
	observer := params.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	classifier := trace.NewClassifier(params.Revision)

	session := Session{
		ID:        newID(),
		Revision:  classifier.Revision(),
		Requested: params.Runs,
		StartedAt: now(),
		Table:     &Table{},
		Failures:  []RunFailure{},
	}
	observer.OnSessionStart(session.ID, params.Runs)

	var ctxErr error
	for run := 1; run <= params.Runs; run++ {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		observer.OnRunStart(run)
		result, err := d.runOne(ctx, classifier, ArtifactsFor(params.OutputDir, run), observer)
		if err != nil {
			var stageErr *StageError
			failure := RunFailure{Run: run, Error: err.Error()}
			if errors.As(err, &stageErr) {
				failure.Stage = stageErr.Stage
				failure.Error = stageErr.Err.Error()
			}
			session.Failures = append(session.Failures, failure)
			observer.OnRunEnd(run, nil, err)
			if params.FailFast {
				break
			}
			continue
		}
		result.Run = run
		session.Table.Append(result)
		observer.OnRunEnd(run, &result, nil)
	}

	session.FinishedAt = now()
	observer.OnSessionEnd(session)
	if ctxErr != nil {
		return session, fmt.Errorf("session interrupted: %w", ctxErr)
	}
	return session, nil
}

// runOne performs simulate, check and parse for a single run.
func (d Driver) runOne(ctx context.Context, classifier *trace.Classifier, run RunArtifacts, observer RunObserver) (summary.RunSummary, error) {
	observer.OnRunStage(run.Run, StageSimulate)
	if err := d.Executor.Simulate(ctx, run); err != nil {
		return summary.RunSummary{}, &StageError{Run: run.Run, Stage: StageSimulate, Err: err}
	}
	observer.OnRunStage(run.Run, StageCheck)
	reportPath, err := d.Executor.Check(ctx, run)
	if err != nil {
		return summary.RunSummary{}, &StageError{Run: run.Run, Stage: StageCheck, Err: err}
	}
	observer.OnRunStage(run.Run, StageParse)
	result, err := summary.FromFile(reportPath, classifier)
	if err != nil {
		return summary.RunSummary{}, &StageError{Run: run.Run, Stage: StageParse, Err: err}
	}
	return result, nil
}

// SummarizeFiles parses existing trace artifacts into a table, numbering
// rows by argument order. Unreadable files are returned as failures.
func SummarizeFiles(paths []string, rev trace.Revision) (*Table, []RunFailure) {
	classifier := trace.NewClassifier(rev)
	table := &Table{}
	var failures []RunFailure
	for i, path := range paths {
		result, err := summary.FromFile(path, classifier)
		if err != nil {
			failures = append(failures, RunFailure{Run: i + 1, Stage: StageParse, Error: err.Error()})
			continue
		}
		result.Run = i + 1
		table.Append(result)
	}
	return table, failures
}
