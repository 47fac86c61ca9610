package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
)

// Format names accepted by Render.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// headers are the display titles of runner.Columns, prefixed by the run index.
var headers = []string{
	"Run",
	"Seed",
	"Clients",
	"Coordinators",
	"Servers",
	"Initiated",
	"Timed Out",
	"Finished",
	"Committed OK",
	"Committed Fail",
	"Aborted",
	"Coord Crashes",
	"Server Crashes",
	"Final Sum",
	"Result",
}

// Options configures table rendering.
type Options struct {
	NoColor bool
}

// Render writes the table in the requested format.
func Render(w io.Writer, format string, t *runner.Table, opts Options) error {
	switch format {
	case "", FormatTable:
		return RenderTable(w, t, opts)
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderTable writes a bordered text table.
func RenderTable(w io.Writer, t *runner.Table, opts Options) error {
	records := indexedRecords(t)
	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle(opts.NoColor)).
		Headers(headers...).
		Rows(records...).
		StyleFunc(func(row, col int) lipgloss.Style {
			value := ""
			if row >= 0 && row < len(records) && col < len(records[row]) {
				value = records[row][col]
			}
			return cellStyle(row, col, value, opts.NoColor)
		})
	_, err := fmt.Fprintln(w, rendered.Render())
	return err
}

// WriteCSV writes a header row and one record per run.
func WriteCSV(w io.Writer, t *runner.Table) error {
	writer := csv.NewWriter(w)
	header := append([]string{"run"}, runner.Columns...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(indexedRecords(t)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteJSON writes the summaries as an indented JSON array.
func WriteJSON(w io.Writer, t *runner.Table) error {
	if t == nil {
		t = &runner.Table{}
	}
	payload, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(payload))
	return err
}

// RenderSessionFooter writes the succeeded/failed counts and each failure.
func RenderSessionFooter(w io.Writer, session runner.Session) {
	fmt.Fprintf(w, "%d succeeded, %d failed\n", session.Succeeded(), session.Failed())
	for _, failure := range session.Failures {
		fmt.Fprintf(w, "  run %d failed at %s: %s\n", failure.Run, failure.Stage, failure.Error)
	}
}

func indexedRecords(t *runner.Table) [][]string {
	rows := t.Rows()
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, append([]string{strconv.Itoa(row.Run)}, runner.Cells(row)...))
	}
	return out
}

var (
	resultOK  = lipgloss.Color("42")
	resultBad = lipgloss.Color("196")
)

func borderStyle(noColor bool) lipgloss.Style {
	if noColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
}

// cellStyle pads cells, highlights the header and colours the final result:
// OK green, any other verdict red, absent unstyled.
func cellStyle(row, col int, value string, noColor bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if noColor {
		return style
	}
	if row == table.HeaderRow {
		return style.Bold(true).Foreground(lipgloss.Color("252"))
	}
	if col != len(headers)-1 {
		return style
	}
	switch value {
	case "OK":
		return style.Foreground(resultOK)
	case "", "-":
		return style
	default:
		return style.Foreground(resultBad)
	}
}
