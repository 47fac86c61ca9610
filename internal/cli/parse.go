package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/report"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

func runParse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		grammar := flags.String("grammar", string(trace.DefaultRevision), "Trace grammar: begin|client_order")
		format := flags.String("format", report.FormatTable, "Output format: table|csv|json")
		duckdbPath := flags.String("duckdb", "", "Store the summaries in a DuckDB database")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, true, stdout, stderr); !ok {
			return code
		}
		paths := flags.Args()
		if len(paths) == 0 {
			fmt.Fprintln(stderr, "at least one trace file is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		revision, err := trace.ParseRevision(*grammar)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		selectedFormat := strings.ToLower(strings.TrimSpace(*format))
		if !validFormat(selectedFormat) {
			fmt.Fprintf(stderr, "invalid --format %q (expected table|csv|json)\n", *format)
			return ExitUsage
		}

		started := time.Now()
		table, failures := runner.SummarizeFiles(paths, revision)
		session := runner.Session{
			ID:         uuid.NewString(),
			Revision:   revision,
			Requested:  len(paths),
			StartedAt:  started,
			FinishedAt: time.Now(),
			Table:      table,
			Failures:   failures,
		}

		if err := report.Render(stdout, selectedFormat, table, report.Options{NoColor: *noColor}); err != nil {
			fmt.Fprintf(stderr, "Failed to render results: %v\n", err)
			return ExitError
		}
		printWarnings(stderr, table)

		exitCode := ExitOK
		if *duckdbPath != "" {
			if _, err := persistSession(context.Background(), *duckdbPath, session); err != nil {
				fmt.Fprintf(stderr, "Failed to store session in DuckDB: %v\n", err)
				exitCode = ExitError
			}
		}
		if len(failures) > 0 {
			report.RenderSessionFooter(stderr, session)
			return ExitError
		}
		return exitCode
	}
}
