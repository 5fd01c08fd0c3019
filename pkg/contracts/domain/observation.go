package domain

import (
	"time"
)

// Variable column sets carried by the two MODIS composite products.
// The 16-day product holds the vegetation indices, the 8-day product
// the biophysical parameters.
var (
	Vars16Day = []string{"NDVI", "EVI", "VCI"}
	Vars8Day  = []string{"LAI", "FAPAR", "LST"}
)

// OutputVariables is the fixed column order of the merged monthly table.
func OutputVariables() []string {
	out := make([]string, 0, len(Vars16Day)+len(Vars8Day))
	out = append(out, Vars16Day...)
	out = append(out, Vars8Day...)
	return out
}

// Value is a nullable measurement. The zero Value is missing.
// Missing readings (empty cells, unparseable numbers, sentinel values)
// never carry a number; absence is represented here, not by NaN or zero.
type Value struct {
	Float64 float64 `json:"value"`
	Valid   bool    `json:"valid"`
}

// NewValue returns a valid Value holding f.
func NewValue(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Observation is one station reading at a single composite date.
type Observation struct {
	Name   string           `json:"name"`
	Date   time.Time        `json:"date"`
	Year   int              `json:"year"`
	Month  int              `json:"month"`
	Values map[string]Value `json:"values"`
}
