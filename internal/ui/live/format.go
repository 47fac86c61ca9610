package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatStatus renders a status string for a row.
func formatStatus(row RunRow, noColor bool) string {
	text := string(row.Status)
	if row.Status == RunDone && row.Summary != nil && len(row.Summary.Warnings) > 0 {
		text += " (" + fmtInt(len(row.Summary.Warnings)) + " warn)"
	}
	if noColor {
		return text
	}
	switch row.Status {
	case RunDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(text)
	case RunFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(text)
	case RunSimulating, RunChecking, RunParsing:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(text)
	default:
		return text
	}
}

// formatRowDuration renders elapsed time for a started row.
func formatRowDuration(row RunRow, now time.Time) string {
	if row.StartedAt.IsZero() {
		return ""
	}
	end := row.FinishedAt
	if end.IsZero() {
		end = now
	}
	return formatDuration(end.Sub(row.StartedAt))
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(100 * time.Millisecond).String()
}

// formatDetail renders the failure message or final result of a row.
func formatDetail(row RunRow) string {
	if row.Error != "" {
		return truncate(row.Error, 60)
	}
	if row.Summary == nil || row.Summary.FinalResult == nil {
		return ""
	}
	return *row.Summary.FinalResult
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit-3] + "..."
}
