package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/spec"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config. Relative directories are checked
// against baseDir.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}
	if baseDir == "" {
		baseDir = "."
	}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.Runs <= 0 {
		collector.add("runs", "must be >= 1")
	}
	if _, err := trace.ParseRevision(cfg.Grammar); err != nil {
		collector.add("grammar", err.Error())
	}
	if cfg.Simulator.Command == "" {
		collector.add("simulator.command", "is required")
	}
	validateDir(collector, "simulator.dir", baseDir, cfg.Simulator.Dir)
	validateDir(collector, "checker.dir", baseDir, cfg.Checker.Dir)
	if cfg.Checker.Command == "" && cfg.Checker.Dir != "" {
		collector.add("checker.dir", "set without checker.command")
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		collector.add("output.dir", "is required")
	}
	switch cfg.Output.Format {
	case FormatTable, FormatCSV, FormatJSON:
	default:
		collector.add("output.format", fmt.Sprintf("unsupported format %q (expected table|csv|json)", cfg.Output.Format))
	}
	switch cfg.Output.UI {
	case UIAuto, UILive, UIPlain:
	default:
		collector.add("output.ui", fmt.Sprintf("unsupported ui mode %q (expected auto|live|plain)", cfg.Output.UI))
	}
	return collector.result()
}

// validateDir checks that an optional working directory exists.
func validateDir(collector *issueCollector, field, baseDir, dir string) {
	if strings.TrimSpace(dir) == "" {
		return
	}
	info, err := os.Stat(ResolvePath(baseDir, dir))
	if err != nil {
		collector.add(field, fmt.Sprintf("directory %q not found", dir))
		return
	}
	if !info.IsDir() {
		collector.add(field, fmt.Sprintf("%q is not a directory", dir))
	}
}
