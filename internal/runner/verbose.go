package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

const verbosePrefix = "[verbose]"

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleRun
	styleMetrics
	styleWarning
	styleError
)

// VerboseObserver logs run progress as prefixed lines.
type VerboseObserver struct {
	Writer  io.Writer
	NoColor bool
}

// NewVerboseObserver logs to w, coloring only when w is a terminal.
func NewVerboseObserver(w io.Writer, noColor bool) *VerboseObserver {
	return &VerboseObserver{Writer: w, NoColor: noColor || !isTerminalWriter(w)}
}

func (v *VerboseObserver) OnSessionStart(sessionID string, runs int) {
	v.log(styleRun, "session %s: %d run(s)", sessionID, runs)
}

func (v *VerboseObserver) OnRunStart(run int) {
	v.log(styleRun, "run %d: start", run)
}

func (v *VerboseObserver) OnRunStage(run int, stage Stage) {
	v.log(styleDefault, "run %d: %s", run, stage)
}

func (v *VerboseObserver) OnRunEnd(run int, result *summary.RunSummary, err error) {
	if err != nil {
		v.log(styleError, "run %d: failed: %v", run, err)
		return
	}
	v.log(styleMetrics, "run %d: finished=%d ok=%s fail=%s abort=%s crashes=%d/%d",
		run,
		result.Finished,
		result.CommittedOKRate,
		result.CommittedFailRate,
		result.AbortedRate,
		result.CoordinatorCrashes,
		result.ServerCrashes,
	)
	for _, warning := range result.Warnings {
		v.log(styleWarning, "run %d: warning: %s", run, warning)
	}
}

func (v *VerboseObserver) OnSessionEnd(session Session) {
	v.log(styleRun, "session %s: %d succeeded, %d failed", session.ID, session.Succeeded(), session.Failed())
}

func (v *VerboseObserver) log(style verboseStyle, format string, args ...any) {
	if v == nil || v.Writer == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	if v.NoColor {
		fmt.Fprintf(v.Writer, "%s %s\n", verbosePrefix, line)
		return
	}
	prefix := lipgloss.NewStyle().Faint(true).Render(verbosePrefix)
	fmt.Fprintf(v.Writer, "%s %s\n", prefix, styleFor(style).Render(line))
}

func styleFor(style verboseStyle) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch style {
	case styleRun:
		return base.Bold(true).Foreground(lipgloss.Color("33"))
	case styleMetrics:
		return base.Foreground(lipgloss.Color("42"))
	case styleWarning:
		return base.Foreground(lipgloss.Color("220"))
	case styleError:
		return base.Foreground(lipgloss.Color("196"))
	default:
		return base.Foreground(lipgloss.Color("244"))
	}
}

// isTerminalWriter reports whether w is attached to a TTY.
func isTerminalWriter(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// FormatWarnings renders run warnings as one line each.
func FormatWarnings(run int, warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, warning := range warnings {
		fmt.Fprintf(&b, "Warning: run %d: %s\n", run, warning)
	}
	return b.String()
}
