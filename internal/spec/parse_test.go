package spec

import (
	"strings"
	"testing"
)

const yamlConfig = `version: 1
runs: 5
grammar: client_order
simulator:
  command: "gradle run"
checker:
  command: "java Check {trace}"
output:
  dir: ".txnoracle/runs"
  format: csv
`

const tomlConfig = `version = 1
runs = 5
grammar = "client_order"

[simulator]
command = "gradle run"

[checker]
command = "java Check {trace}"

[output]
dir = ".txnoracle/runs"
format = "csv"
`

// TestParseConfigFormatsAgree verifies YAML and TOML decode to the same config.
func TestParseConfigFormatsAgree(t *testing.T) {
	fromYAML, err := ParseConfigFile("cfg.yml", []byte(yamlConfig))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	fromTOML, err := ParseConfigFile("cfg.TOML", []byte(tomlConfig))
	if err != nil {
		t.Fatalf("parse toml: %v", err)
	}
	if fromYAML != fromTOML {
		t.Fatalf("expected equal configs:\n%+v\n%+v", fromYAML, fromTOML)
	}
	if fromYAML.Runs != 5 || fromYAML.Checker.Command != "java Check {trace}" || fromYAML.Output.Format != "csv" {
		t.Fatalf("unexpected config: %+v", fromYAML)
	}
}

// TestParseConfigRejectsUnknownFields verifies strict decoding in both formats.
func TestParseConfigRejectsUnknownFields(t *testing.T) {
	if _, err := ParseConfig([]byte("version: 1\nretries: 3\n")); err == nil {
		t.Fatalf("expected yaml error for unknown field")
	}
	_, err := ParseConfigTOML([]byte("version = 1\nretries = 3\n"))
	if err == nil || !strings.Contains(err.Error(), "retries") {
		t.Fatalf("expected toml error naming retries, got %v", err)
	}
}

// TestParseConfigRejectsMultipleDocuments verifies a single YAML document is required.
func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	if _, err := ParseConfig([]byte("version: 1\n---\nversion: 2\n")); err == nil {
		t.Fatalf("expected error for multiple documents")
	}
	if _, err := ParseConfig([]byte("")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
