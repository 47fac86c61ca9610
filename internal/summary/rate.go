package summary

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NotApplicable is the display value of a rate with a zero denominator.
const NotApplicable = "n/a"

// Rate is a count expressed as a share of finished transactions.
// Valid is false when there were no finished transactions.
type Rate struct {
	Count   int
	Percent float64
	Valid   bool
}

// NewRate computes count/total as a percentage. A zero total yields an
// invalid rate rather than a division fault.
func NewRate(count, total int) Rate {
	if total <= 0 {
		return Rate{Count: count}
	}
	return Rate{
		Count:   count,
		Percent: float64(count) / float64(total) * 100,
		Valid:   true,
	}
}

// String renders "count (pct%)" with pct rounded to two decimals, or n/a.
func (r Rate) String() string {
	if !r.Valid {
		return NotApplicable
	}
	return strconv.Itoa(r.Count) + " (" + FormatPercent(r.Percent) + "%)"
}

// FormatPercent rounds to two decimals and prints the shortest form that
// keeps at least one decimal place: 100.0, 33.33, 12.5. Rounding works on
// the exact binary value with ties to even, so 0.125 prints 0.12 and 2.675
// prints 2.67.
func FormatPercent(pct float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(pct, 'f', 2, 64), 64)
	if err != nil {
		return strconv.FormatFloat(pct, 'f', 2, 64)
	}
	text := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

type rateJSON struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// MarshalJSON encodes an invalid rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(rateJSON{Count: r.Count, Percent: r.Percent})
}

// UnmarshalJSON accepts the output of MarshalJSON.
func (r *Rate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Rate{}
		return nil
	}
	var payload rateJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	*r = Rate{Count: payload.Count, Percent: payload.Percent, Valid: true}
	return nil
}
