package runner

import (
	"encoding/json"
	"strconv"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

// Columns is the stable display order of the result table.
var Columns = []string{
	"seed",
	"clients",
	"coordinators",
	"servers",
	"initiated",
	"timed_out",
	"finished",
	"committed_ok",
	"committed_fail",
	"aborted",
	"coordinator_crashes",
	"server_crashes",
	"final_sum",
	"final_result",
}

// Absent is the display value of a field the trace never announced.
const Absent = "-"

// Table is the append-only, run-ordered list of run summaries.
type Table struct {
	rows []summary.RunSummary
}

// Append adds a summary after every previously appended one.
func (t *Table) Append(row summary.RunSummary) {
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns a copy of the rows in insertion order.
func (t *Table) Rows() []summary.RunSummary {
	if t == nil {
		return nil
	}
	out := make([]summary.RunSummary, len(t.rows))
	copy(out, t.rows)
	return out
}

// Records renders each row as display cells in Columns order.
func (t *Table) Records() [][]string {
	rows := t.Rows()
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, Cells(row))
	}
	return out
}

// MarshalJSON encodes the table as an array of summaries.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := t.Rows()
	if rows == nil {
		rows = []summary.RunSummary{}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON restores a table encoded by MarshalJSON.
func (t *Table) UnmarshalJSON(data []byte) error {
	var rows []summary.RunSummary
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	t.rows = rows
	return nil
}

// Cells renders one summary in Columns order.
func Cells(s summary.RunSummary) []string {
	return []string{
		formatUint(s.Seed),
		formatInt(s.Clients),
		formatInt(s.Coordinators),
		formatInt(s.Servers),
		strconv.Itoa(s.Initiated),
		strconv.Itoa(s.TimedOut),
		strconv.Itoa(s.Finished),
		s.CommittedOKRate.String(),
		s.CommittedFailRate.String(),
		s.AbortedRate.String(),
		strconv.Itoa(s.CoordinatorCrashes),
		strconv.Itoa(s.ServerCrashes),
		formatUint(s.FinalSum),
		formatString(s.FinalResult),
	}
}

func formatUint(v *uint64) string {
	if v == nil {
		return Absent
	}
	return strconv.FormatUint(*v, 10)
}

func formatInt(v *int) string {
	if v == nil {
		return Absent
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil {
		return Absent
	}
	return *v
}
