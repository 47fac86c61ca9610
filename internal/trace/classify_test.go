package trace

import (
	"reflect"
	"testing"
)

// TestClassifyRecognizesEachRule verifies every grammar line maps to its event.
func TestClassifyRecognizesEachRule(t *testing.T) {
	cases := []struct {
		name string
		rev  Revision
		line string
		want Event
	}{
		{"seed", RevisionBeginLines, "Seed: 42", SeedAnnounced{Seed: 42}},
		{"actors", RevisionBeginLines, "Actor Info: clients:3 coordinators:1 servers:2", ActorsAnnounced{Clients: 3, Coordinators: 1, Servers: 2}},
		{"begin", RevisionBeginLines, "CLIENT 1 BEGIN", TxnBegun{ClientID: 1}},
		{"timeout", RevisionBeginLines, "CLIENT 4 TIMEOUT", TxnTimedOut{ClientID: 4}},
		{"commit ok", RevisionBeginLines, "CLIENT 1 COMMIT OK (1/1)", TxnCommitAttempted{ClientID: 1, Outcome: OutcomeOK, Numerator: 1, Denominator: 1}},
		{"commit fail", RevisionBeginLines, "CLIENT 2 COMMIT FAIL (1/2)", TxnCommitAttempted{ClientID: 2, Outcome: OutcomeFail, Numerator: 1, Denominator: 2}},
		{"abort", RevisionBeginLines, "CLIENT 2 END ABORT", TxnAborted{ClientID: 2}},
		{"coordinator crash", RevisionBeginLines, "\tCOORDI 1 Crashing", CoordinatorCrashed{CoordinatorID: 1}},
		{"server crash", RevisionBeginLines, "\t\tSERVER 2 Crashing", ServerCrashed{ServerID: 2}},
		{"final sum", RevisionBeginLines, "Final sum = 100 OK", FinalSumReported{Sum: 100, Result: "OK"}},
		{"final sum mismatch", RevisionBeginLines, "Final sum = 2999 MISMATCH", FinalSumReported{Sum: 2999, Result: "MISMATCH"}},
		{"client order", RevisionClientOrder, "Client Order [2, 0, 1]", ClientOrderAnnounced{Clients: []string{"2", "0", "1"}}},
		{"empty client order", RevisionClientOrder, "Client Order []", ClientOrderAnnounced{Clients: []string{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NewClassifier(tc.rev).Classify(tc.line)
			if !ok {
				t.Fatalf("expected %q to be recognized", tc.line)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

// TestClassifyRejectsMalformedLines verifies noise and bad numbers are dropped.
func TestClassifyRejectsMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"Seed: abc",
		"Seed: 42abc",
		"Seed: 99999999999999999999999",
		"Seed:42",
		"Actor Info: clients:x coordinators:1 servers:2",
		"CLIENT x BEGIN",
		"CLIENT 1 END",
		"CLIENT 1 COMMIT TIMEOUT (1/1)",
		"CLIENT 1 COMMIT OK (a/1)",
		"CLIENT 1 COMMIT OK 1/1",
		"[INFO] COORDI 1 Received txnBegin from txnClient1",
		"\t\tTxn1 SERVER 2 Received ABORT",
		"the Seed: 42 is printed later",
		"Final sum = -1 OK",
		"Client Order [1, 2]",
		">>> Press ENTER to exit <<<",
	}
	c := NewClassifier(RevisionBeginLines)
	for _, line := range lines {
		if event, ok := c.Classify(line); ok {
			t.Fatalf("expected %q to be ignored, got %#v", line, event)
		}
	}
}

// TestClassifyToleratesIndentation verifies leading whitespace is not significant.
func TestClassifyToleratesIndentation(t *testing.T) {
	c := NewClassifier(RevisionBeginLines)
	for _, line := range []string{"COORDI 3 Crashing", "\tCOORDI 3 Crashing", "  \t COORDI 3 Crashing"} {
		got, ok := c.Classify(line)
		if !ok || got != (CoordinatorCrashed{CoordinatorID: 3}) {
			t.Fatalf("expected coordinator crash for %q, got %#v", line, got)
		}
	}
	got, ok := c.Classify("    CLIENT 7 BEGIN")
	if !ok || got != (TxnBegun{ClientID: 7}) {
		t.Fatalf("expected indented begin, got %#v", got)
	}
}

// TestClassifyRevisionsDoNotCombine verifies only one initiated convention is active.
func TestClassifyRevisionsDoNotCombine(t *testing.T) {
	order := NewClassifier(RevisionClientOrder)
	if _, ok := order.Classify("CLIENT 1 BEGIN"); ok {
		t.Fatalf("expected BEGIN to be ignored under client_order")
	}
	begin := NewClassifier(RevisionBeginLines)
	if _, ok := begin.Classify("Client Order [1]"); ok {
		t.Fatalf("expected Client Order to be ignored under begin")
	}
	if _, ok := order.Classify("Client Order [1,,2]"); ok {
		t.Fatalf("expected list with empty entry to be ignored")
	}
}

// TestClassifyIsDeterministic verifies repeated classification yields the same event.
func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier(RevisionBeginLines)
	line := "CLIENT 5 COMMIT FAIL (2/3)"
	first, ok := c.Classify(line)
	if !ok {
		t.Fatalf("expected commit line to be recognized")
	}
	for i := 0; i < 10; i++ {
		_, _ = c.Classify("Seed: 1")
		again, _ := c.Classify(line)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected %#v, got %#v", first, again)
		}
	}
}

// TestRulesAreMutuallyExclusive verifies a synthetic line per rule matches only that rule.
func TestRulesAreMutuallyExclusive(t *testing.T) {
	samples := map[string][]string{
		"seed":              {"Seed: 7", "  Seed: 0"},
		"actors":            {"Actor Info: clients:0 coordinators:0 servers:0"},
		"txn_begin":         {"CLIENT 0 BEGIN", "CLIENT 12 BEGIN"},
		"client_order":      {"Client Order [0, 1, 2]"},
		"txn_timeout":       {"CLIENT 3 TIMEOUT"},
		"txn_commit":        {"CLIENT 3 COMMIT OK (3/4)", "CLIENT 3 COMMIT FAIL (1/4)"},
		"txn_abort":         {"CLIENT 3 END ABORT"},
		"coordinator_crash": {"\tCOORDI 0 Crashing"},
		"server_crash":      {"\t\tSERVER 9 Crashing"},
		"final_sum":         {"Final sum = 3000 OK"},
	}
	for _, rev := range []Revision{RevisionBeginLines, RevisionClientOrder} {
		c := NewClassifier(rev)
		for _, name := range Rules(rev) {
			lines, ok := samples[name]
			if !ok {
				t.Fatalf("no sample lines for rule %s", name)
			}
			for _, line := range lines {
				got := c.Matches(line)
				if len(got) != 1 || got[0] != name {
					t.Fatalf("%s: expected only %s to match %q, got %v", rev, name, line, got)
				}
			}
		}
	}
}

// TestParseRevision verifies accepted spellings and errors.
func TestParseRevision(t *testing.T) {
	cases := map[string]Revision{
		"":             RevisionBeginLines,
		"begin":        RevisionBeginLines,
		"BEGIN":        RevisionBeginLines,
		"client_order": RevisionClientOrder,
		"client-order": RevisionClientOrder,
	}
	for input, want := range cases {
		got, err := ParseRevision(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", input, want, got)
		}
	}
	if _, err := ParseRevision("txn_id"); err == nil {
		t.Fatalf("expected error for unknown revision")
	}
}
