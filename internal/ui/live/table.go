package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/runner"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// defaultColumns returns the run table columns at their natural widths.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Run", Width: 4},
		{Title: "Status", Width: 18},
		{Title: "Seed", Width: 20},
		{Title: "Finished", Width: 8},
		{Title: "OK", Width: 16},
		{Title: "Fail", Width: 16},
		{Title: "Aborted", Width: 16},
		{Title: "Result", Width: 24},
		{Title: "Elapsed", Width: 8},
	}
}

// columnsForWidth widens the result column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	used := 0
	for _, column := range columns {
		used += column.Width + 2
	}
	if extra := width - used; extra > 0 {
		columns[7].Width += extra
	}
	return columns
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		seed, finished, ok, fail, aborted := "", "", "", "", ""
		if row.Summary != nil {
			cells := runner.Cells(*row.Summary)
			seed = cells[0]
			finished = cells[6]
			ok, fail, aborted = cells[7], cells[8], cells[9]
		}
		rows = append(rows, table.Row{
			fmtInt(row.Run),
			formatStatus(row, noColor),
			seed,
			finished,
			ok,
			fail,
			aborted,
			formatDetail(row),
			formatRowDuration(row, now),
		})
	}
	return rows
}
