package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/duckdb"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/report"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
)

// validFormat reports whether format names a supported renderer.
func validFormat(format string) bool {
	switch format {
	case report.FormatTable, report.FormatCSV, report.FormatJSON:
		return true
	default:
		return false
	}
}

// printWarnings writes every row's data-quality warnings to w.
func printWarnings(w io.Writer, table *runner.Table) {
	for _, row := range table.Rows() {
		fmt.Fprint(w, runner.FormatWarnings(row.Run, row.Warnings))
	}
}

// persistSession stores the session in the DuckDB database at path.
func persistSession(ctx context.Context, path string, session runner.Session) (string, error) {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return "", err
	}
	defer db.Close()
	return duckdb.SaveSession(ctx, db, session)
}
