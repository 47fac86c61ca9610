package summary

import (
	"encoding/json"
	"testing"
)

// TestFormatPercent verifies two-decimal rounding with a trailing decimal,
// rounding exact ties to even and inexact values by their binary value.
func TestFormatPercent(t *testing.T) {
	cases := map[float64]string{
		100:         "100.0",
		50:          "50.0",
		0:           "0.0",
		12.5:        "12.5",
		100.0 / 3:   "33.33",
		200.0 / 3:   "66.67",
		14.285714:   "14.29",
		99.99999999: "100.0",
		0.125:       "0.12",
		0.375:       "0.38",
		2.675:       "2.67",
		1.005:       "1.0",
	}
	for input, want := range cases {
		if got := FormatPercent(input); got != want {
			t.Fatalf("FormatPercent(%v): expected %q, got %q", input, want, got)
		}
	}
}

// TestRateJSON verifies invalid rates encode as null and valid ones round trip.
func TestRateJSON(t *testing.T) {
	data, err := json.Marshal(NewRate(3, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("expected null, got %s", data)
	}
	var decoded Rate
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if decoded.Valid {
		t.Fatalf("expected invalid rate")
	}

	data, err = json.Marshal(NewRate(1, 4))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Valid || decoded.Count != 1 || decoded.Percent != 25 {
		t.Fatalf("unexpected decoded rate: %+v", decoded)
	}
}
