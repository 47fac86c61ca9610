package duckdb_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/duckdb"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/testutil"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

const testTimeout = 5 * time.Second

// openTestDB opens an in-memory DuckDB instance with the schema applied.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db, err := duckdb.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, ctx
}

// queryInt returns a single integer value from the database.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}

func sampleSession(t *testing.T) runner.Session {
	t.Helper()
	table := &runner.Table{}
	traces := []string{
		"Seed: 9\nActor Info: clients:2 coordinators:1 servers:3\nCLIENT 1 BEGIN\nCLIENT 1 COMMIT FAIL (0/1)\nCLIENT 1 END ABORT\nFinal sum = 300 OK\n",
		"CLIENT 2 END ABORT\n",
	}
	for i, text := range traces {
		s, err := summary.FromReader(strings.NewReader(text), nil)
		if err != nil {
			t.Fatalf("summarize: %v", err)
		}
		s.Run = i + 1
		table.Append(s)
	}
	start := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	return runner.Session{
		ID:         uuid.NewString(),
		Revision:   trace.RevisionBeginLines,
		Requested:  3,
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
		Table:      table,
		Failures:   []runner.RunFailure{{Run: 3, Stage: runner.StageSimulate, Error: "exit status 1"}},
	}
}

// TestSchemaObjectsExist verifies core tables and views are created.
func TestSchemaObjectsExist(t *testing.T) {
	db, ctx := openTestDB(t)
	for _, table := range []string{"sessions", "run_summaries", "run_warnings", "run_failures"} {
		count := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?", table)
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	viewCount := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'v_session_rates' AND table_type = 'VIEW'")
	if viewCount != 1 {
		t.Fatalf("expected view v_session_rates to exist")
	}
}

// TestEnsureSchemaIsIdempotent verifies the DDL can be reapplied.
func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db, _ := openTestDB(t)
	if err := duckdb.EnsureSchema(db); err != nil {
		t.Fatalf("expected second schema apply to succeed, got %v", err)
	}
	if err := duckdb.EnsureSchema(nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

// TestSaveSessionPersistsRows verifies sessions, summaries, warnings and failures are stored.
func TestSaveSessionPersistsRows(t *testing.T) {
	db, ctx := openTestDB(t)
	session := sampleSession(t)
	id, err := duckdb.SaveSession(ctx, db, session)
	if err != nil {
		t.Fatalf("save session: %v", err)
	}
	if id != session.ID {
		t.Fatalf("expected id %s, got %s", session.ID, id)
	}
	if got := queryInt(t, ctx, db, "SELECT runs_failed FROM sessions WHERE CAST(session_id AS VARCHAR) = ?", id); got != 1 {
		t.Fatalf("expected 1 failed run, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM run_summaries"); got != 2 {
		t.Fatalf("expected 2 summaries, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM run_summaries WHERE run = 2 AND seed IS NULL AND committed_ok_pct IS NULL"); got != 1 {
		t.Fatalf("expected nulls for absent values in run 2")
	}
	if got := queryInt(t, ctx, db, "SELECT failed_then_aborted FROM run_summaries WHERE run = 1"); got != 1 {
		t.Fatalf("expected failed_then_aborted 1, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM run_warnings WHERE run = 2"); got == 0 {
		t.Fatalf("expected warnings stored for run 2")
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM run_failures WHERE stage = 'simulate'"); got != 1 {
		t.Fatalf("expected 1 simulate failure, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT runs FROM v_session_rates"); got != 2 {
		t.Fatalf("expected 2 runs in view, got %d", got)
	}
}

// TestSaveSessionGeneratesID verifies an empty session id is replaced.
func TestSaveSessionGeneratesID(t *testing.T) {
	db, ctx := openTestDB(t)
	session := sampleSession(t)
	session.ID = ""
	id, err := duckdb.SaveSession(ctx, db, session)
	if err != nil {
		t.Fatalf("save session: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected generated uuid, got %q", id)
	}
}

// TestSaveSessionDuplicateRollsBack verifies a failed save leaves no partial rows.
func TestSaveSessionDuplicateRollsBack(t *testing.T) {
	db, ctx := openTestDB(t)
	session := sampleSession(t)
	if _, err := duckdb.SaveSession(ctx, db, session); err != nil {
		t.Fatalf("save session: %v", err)
	}
	if _, err := duckdb.SaveSession(ctx, db, session); err == nil {
		t.Fatalf("expected duplicate session id to fail")
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM run_summaries"); got != 2 {
		t.Fatalf("expected 2 summaries after rollback, got %d", got)
	}
}

// TestSaveSessionRejectsInvalidID verifies non-uuid ids are rejected.
func TestSaveSessionRejectsInvalidID(t *testing.T) {
	db, ctx := openTestDB(t)
	session := sampleSession(t)
	session.ID = "not-a-uuid"
	if _, err := duckdb.SaveSession(ctx, db, session); err == nil {
		t.Fatalf("expected invalid id error")
	}
}
