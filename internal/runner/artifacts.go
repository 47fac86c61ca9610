package runner

import (
	"path/filepath"
	"strconv"
	"strings"
)

// RunArtifacts names the files produced for one run. Names depend only on
// the run index so reruns overwrite the same files.
type RunArtifacts struct {
	Run        int
	Dir        string
	TracePath  string
	ReportPath string
}

// ArtifactsFor returns the artifact paths of run inside dir.
func ArtifactsFor(dir string, run int) RunArtifacts {
	index := strconv.Itoa(run)
	return RunArtifacts{
		Run:        run,
		Dir:        dir,
		TracePath:  filepath.Join(dir, "log"+index+".txt"),
		ReportPath: filepath.Join(dir, "check"+index+".txt"),
	}
}

// ResultsPath returns the session results.json path inside dir.
func ResultsPath(dir string) string {
	return filepath.Join(dir, "results.json")
}

// expandPlaceholders substitutes artifact paths into a command line. Paths
// are single-quoted so each expands to exactly one shell word.
func expandPlaceholders(command string, run RunArtifacts) string {
	replacer := strings.NewReplacer(
		"{run}", strconv.Itoa(run.Run),
		"{trace}", shellQuote(run.TracePath),
		"{report}", shellQuote(run.ReportPath),
		"{dir}", shellQuote(run.Dir),
	)
	return replacer.Replace(command)
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
