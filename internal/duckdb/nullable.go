package duckdb

import (
	"time"

	"github.com/riccardoscilla/OCC-for-Distributed-Transactions/internal/summary"
)

// nullableString converts an optional string pointer into a SQL argument.
func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableUint(value *uint64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// nullableRate stores the percentage, or NULL when the rate is not applicable.
func nullableRate(rate summary.Rate) interface{} {
	if !rate.Valid {
		return nil
	}
	return rate.Percent
}

func nullableTime(value time.Time) interface{} {
	if value.IsZero() {
		return nil
	}
	return value.UTC()
}
