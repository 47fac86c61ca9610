package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Executor runs the external collaborators of a run: the simulator that
// writes the raw trace and the checker that derives the report to parse.
type Executor interface {
	// Simulate produces run.TracePath.
	Simulate(ctx context.Context, run RunArtifacts) error
	// Check produces the report for run and returns the path to parse.
	Check(ctx context.Context, run RunArtifacts) (string, error)
}

// ShellExecutor runs configured commands through sh -c with stdout
// redirected into the run's artifact.
type ShellExecutor struct {
	SimulatorCommand string
	SimulatorDir     string
	CheckerCommand   string
	CheckerDir       string
	// Stderr receives the commands' standard error. Nil discards it.
	Stderr io.Writer
}

// Simulate runs the simulator command, capturing stdout into the trace file.
func (e ShellExecutor) Simulate(ctx context.Context, run RunArtifacts) error {
	if strings.TrimSpace(e.SimulatorCommand) == "" {
		return fmt.Errorf("simulator command is empty")
	}
	return e.runInto(ctx, e.SimulatorCommand, e.SimulatorDir, run, run.TracePath)
}

// Check runs the checker command against the trace. Without a checker the
// raw trace is the report.
func (e ShellExecutor) Check(ctx context.Context, run RunArtifacts) (string, error) {
	if strings.TrimSpace(e.CheckerCommand) == "" {
		return run.TracePath, nil
	}
	if err := e.runInto(ctx, e.CheckerCommand, e.CheckerDir, run, run.ReportPath); err != nil {
		return "", err
	}
	return run.ReportPath, nil
}

func (e ShellExecutor) runInto(ctx context.Context, command, dir string, run RunArtifacts, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", expandPlaceholders(command, run))
	cmd.Dir = dir
	cmd.Stdout = out
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}
	cmd.Env = append(os.Environ(),
		"TXNORACLE_RUN="+strconv.Itoa(run.Run),
		"TXNORACLE_TRACE="+run.TracePath,
		"TXNORACLE_REPORT="+run.ReportPath,
	)
	runErr := cmd.Run()
	closeErr := out.Close()
	if runErr != nil {
		return fmt.Errorf("command %q failed: %w", command, runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close artifact: %w", closeErr)
	}
	return nil
}
