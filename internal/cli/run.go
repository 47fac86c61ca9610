package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/config"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/report"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/spec"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/ui/live"
)

// newExecutor builds the executor for a loaded config.
var newExecutor = func(cfg spec.Config, baseDir string, stderr io.Writer) runner.Executor {
	return runner.ShellExecutor{
		SimulatorCommand: cfg.Simulator.Command,
		SimulatorDir:     commandDir(baseDir, cfg.Simulator.Dir),
		CheckerCommand:   cfg.Checker.Command,
		CheckerDir:       commandDir(baseDir, cfg.Checker.Dir),
		Stderr:           stderr,
	}
}

// runDeps is overridden in tests to pin session ids and clocks.
var runDeps = runner.Dependencies{}

// commandDir resolves a command directory, defaulting to the config directory.
func commandDir(baseDir, dir string) string {
	if resolved := config.ResolvePath(baseDir, dir); resolved != "" {
		return resolved
	}
	return baseDir
}

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .txnoracle.yml)")
		runs := flags.Int("runs", 0, "Override the number of runs")
		outputDir := flags.String("output-dir", "", "Override output directory")
		format := flags.String("format", "", "Output format: table|csv|json")
		duckdbPath := flags.String("duckdb", "", "Store the session in a DuckDB database")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		failFast := flags.Bool("fail-fast", false, "Stop after the first failed run")
		verbose := flags.Bool("verbose", false, "Log run progress to stderr")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, false, stdout, stderr); !ok {
			return code
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		baseDir := config.BaseDir(resolved)

		if *runs < 0 {
			fmt.Fprintf(stderr, "invalid --runs %d: must be positive\n", *runs)
			return ExitUsage
		}
		if *runs > 0 {
			cfg.Runs = *runs
		}
		if *failFast {
			cfg.FailFast = true
		}
		selectedFormat := cfg.Output.Format
		if strings.TrimSpace(*format) != "" {
			selectedFormat = strings.ToLower(strings.TrimSpace(*format))
		}
		if !validFormat(selectedFormat) {
			fmt.Fprintf(stderr, "invalid --format %q (expected table|csv|json)\n", selectedFormat)
			return ExitUsage
		}
		selectedUI := cfg.Output.UI
		if strings.TrimSpace(*uiMode) != "" {
			selectedUI = *uiMode
		}
		decision, err := resolveUIMode(selectedUI, *verbose, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		revision, err := trace.ParseRevision(cfg.Grammar)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		dir := config.ResolvePath(baseDir, cfg.Output.Dir)
		if strings.TrimSpace(*outputDir) != "" {
			dir = *outputDir
		}
		dbPath := config.ResolvePath(baseDir, cfg.Output.DuckDB)
		if strings.TrimSpace(*duckdbPath) != "" {
			dbPath = *duckdbPath
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var observers runner.Observers
		var controller *live.Controller
		if *verbose {
			observers = append(observers, runner.NewVerboseObserver(stderr, *noColor))
		}
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			observers = append(observers, controller)
		}

		driver := runner.Driver{Executor: newExecutor(cfg, baseDir, stderr)}
		session, runErr := driver.Run(ctx, runner.Params{
			Runs:      cfg.Runs,
			OutputDir: dir,
			Revision:  revision,
			FailFast:  cfg.FailFast,
			Observer:  observers,
			Deps:      runDeps,
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if session.Table == nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", runErr)
			return ExitError
		}

		if err := report.Render(stdout, selectedFormat, session.Table, report.Options{NoColor: *noColor}); err != nil {
			fmt.Fprintf(stderr, "Failed to render results: %v\n", err)
			return ExitError
		}
		printWarnings(stderr, session.Table)

		exitCode := ExitOK
		if path, err := runner.WriteSessionJSON(session, dir); err != nil {
			fmt.Fprintf(stderr, "Failed to write results: %v\n", err)
			exitCode = ExitError
		} else {
			fmt.Fprintf(stderr, "Results: %s\n", path)
		}
		if dbPath != "" {
			if id, err := persistSession(ctx, dbPath, session); err != nil {
				fmt.Fprintf(stderr, "Failed to store session in DuckDB: %v\n", err)
				exitCode = ExitError
			} else {
				fmt.Fprintf(stderr, "Stored session %s in %s\n", id, dbPath)
			}
		}
		report.RenderSessionFooter(stderr, session)
		if runErr != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", runErr)
			return ExitError
		}
		if session.Err() != nil {
			return ExitError
		}
		return exitCode
	}
}
