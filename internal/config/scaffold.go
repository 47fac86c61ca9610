package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
# Number of simulations per session.
runs: 10
# begin: count "CLIENT <id> BEGIN" lines; client_order: count "Client Order [...]" entries.
grammar: begin
fail_fast: false

simulator:
  command: "gradle run"
  dir: ""

checker:
  # {trace} expands to the quoted raw trace path; stdout becomes the check report.
  command: "java Check {trace}"
  dir: ""

output:
  dir: ".txnoracle/runs"
  format: table
  ui: auto
  duckdb: ""
`

// ErrConfigExists is returned by WriteScaffold when the target exists.
var ErrConfigExists = errors.New("config already exists")

// WriteScaffold writes a starter config to path without overwriting.
func WriteScaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
