package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

// SaveSession stores a session, its summaries, warnings and failures in one transaction.
// It returns the session id used, generating one when the session has none.
func SaveSession(ctx context.Context, db *sql.DB, session runner.Session) (string, error) {
	if ctx == nil {
		return "", errors.New("duckdb: context is nil")
	}
	if db == nil {
		return "", errors.New("duckdb: db is nil")
	}
	id := session.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("duckdb: session id %q: %w", id, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, grammar, runs_requested, runs_succeeded, runs_failed, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		string(session.Revision),
		session.Requested,
		session.Succeeded(),
		session.Failed(),
		nullableTime(session.StartedAt),
		nullableTime(session.FinishedAt),
	); err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	for _, row := range session.Table.Rows() {
		if err := insertSummary(ctx, tx, id, row); err != nil {
			return "", err
		}
	}
	for _, failure := range session.Failures {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO run_failures (session_id, run, stage, error) VALUES (?, ?, ?, ?)`,
			id,
			failure.Run,
			string(failure.Stage),
			failure.Error,
		); err != nil {
			return "", fmt.Errorf("insert failure for run %d: %w", failure.Run, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit session: %w", err)
	}
	return id, nil
}

func insertSummary(ctx context.Context, tx *sql.Tx, sessionID string, s summary.RunSummary) error {
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO run_summaries (
			session_id, run, seed, clients, coordinators, servers,
			initiated, timed_out, finished, committed_ok, committed_fail, aborted,
			failed_then_aborted, coordinator_crashes, server_crashes,
			final_sum, final_result, committed_ok_pct, committed_fail_pct, aborted_pct
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID,
		s.Run,
		nullableUint(s.Seed),
		nullableInt(s.Clients),
		nullableInt(s.Coordinators),
		nullableInt(s.Servers),
		s.Initiated,
		s.TimedOut,
		s.Finished,
		s.CommittedOK,
		s.CommittedFail,
		s.Aborted,
		s.FailedThenAborted,
		s.CoordinatorCrashes,
		s.ServerCrashes,
		nullableUint(s.FinalSum),
		nullableString(s.FinalResult),
		nullableRate(s.CommittedOKRate),
		nullableRate(s.CommittedFailRate),
		nullableRate(s.AbortedRate),
	); err != nil {
		return fmt.Errorf("insert summary for run %d: %w", s.Run, err)
	}
	for i, warning := range s.Warnings {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO run_warnings (session_id, run, warning_index, message) VALUES (?, ?, ?, ?)`,
			sessionID,
			s.Run,
			i,
			warning,
		); err != nil {
			return fmt.Errorf("insert warning for run %d: %w", s.Run, err)
		}
	}
	return nil
}
