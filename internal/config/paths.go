package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	DefaultConfigFile = ".txnoracle.yml"
	DefaultOutputDir  = ".txnoracle/runs"
)

// configFileNames are searched in order within each directory.
var configFileNames = []string{".txnoracle.yml", ".txnoracle.yaml", ".txnoracle.toml"}

// BaseDir returns the directory relative paths in a config resolve against.
func BaseDir(configPath string) string {
	return filepath.Dir(configPath)
}

// ResolvePath joins a relative path onto base; absolute and empty paths are
// returned unchanged.
func ResolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// FindConfigPath searches upward from startDir for a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil {
				if info.IsDir() {
					return "", fmt.Errorf("config path %q is a directory", candidate)
				}
				return candidate, nil
			}
			if !os.IsNotExist(err) {
				return "", fmt.Errorf("stat config path %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories", strings.Join(configFileNames, "|"), abs)
		}
		dir = parent
	}
}
