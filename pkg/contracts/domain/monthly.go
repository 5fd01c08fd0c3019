package domain

import (
	"time"
)

// MonthlyKey identifies one station-month. It is the grouping key of the
// aggregation and the join key of the merge; within any aggregated or
// merged table it is unique.
type MonthlyKey struct {
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
}

// Less orders keys by (name, year, month) for deterministic output.
func (k MonthlyKey) Less(other MonthlyKey) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// MonthlyAggregate is one station-month summary of a single product:
// per variable, the arithmetic mean of the valid readings in that month
// and the count of readings that contributed to it. A variable with no
// valid readings in the month has a missing mean and a zero count.
type MonthlyAggregate struct {
	Key    MonthlyKey       `json:"key"`
	Means  map[string]Value `json:"means"`
	Counts map[string]int   `json:"counts"`
}

// MonthlyRow is one row of the merged output table. Date is the first
// calendar day of the row's month (UTC). Variables absent from a row's
// source product stay missing.
type MonthlyRow struct {
	Key    MonthlyKey       `json:"key"`
	Values map[string]Value `json:"values"`
	Date   time.Time        `json:"date"`
}
