package config

import (
	"strings"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/spec"
)

// Output formats and UI modes accepted by the config and the CLI.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"

	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Normalize fills defaults and canonicalizes enum spellings.
func Normalize(cfg *spec.Config) {
	cfg.Grammar = strings.ToLower(strings.TrimSpace(cfg.Grammar))
	if cfg.Grammar == "" {
		cfg.Grammar = "begin"
	}
	cfg.Simulator.Command = strings.TrimSpace(cfg.Simulator.Command)
	cfg.Checker.Command = strings.TrimSpace(cfg.Checker.Command)
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatTable
	}
	cfg.Output.UI = strings.ToLower(strings.TrimSpace(cfg.Output.UI))
	if cfg.Output.UI == "" {
		cfg.Output.UI = UIAuto
	}
}
