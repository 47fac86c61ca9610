package runner

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/trace"
)

// TestCellsRenderAbsenceDistinctFromZero verifies "-" for absent and "0" for zero.
func TestCellsRenderAbsenceDistinctFromZero(t *testing.T) {
	absent, err := summary.FromReader(strings.NewReader("CLIENT 1 BEGIN\n"), trace.NewClassifier(trace.RevisionBeginLines))
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	zero, err := summary.FromReader(strings.NewReader("Actor Info: clients:0 coordinators:0 servers:0\n"), nil)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	a := Cells(absent)
	z := Cells(zero)
	if len(a) != len(Columns) {
		t.Fatalf("expected %d cells, got %d", len(Columns), len(a))
	}
	if a[1] != Absent || z[1] != "0" {
		t.Fatalf("expected clients %q vs %q, got %q vs %q", Absent, "0", a[1], z[1])
	}
	if a[7] != summary.NotApplicable || a[12] != Absent || a[13] != Absent {
		t.Fatalf("unexpected absent cells: %v", a)
	}
}

// TestTableJSONRoundTrip verifies tables encode as an ordered array.
func TestTableJSONRoundTrip(t *testing.T) {
	table := &Table{}
	table.Append(summary.RunSummary{Run: 1})
	table.Append(summary.RunSummary{Run: 2, Initiated: 4})
	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Table
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rows := decoded.Rows()
	if len(rows) != 2 || rows[1].Run != 2 || rows[1].Initiated != 4 {
		t.Fatalf("unexpected decoded rows: %+v", rows)
	}
	if len(table.Records()) != 2 {
		t.Fatalf("expected 2 records")
	}
}
