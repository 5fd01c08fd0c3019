package dataprocessing

import (
	"math"

	"modiscli/pkg/contracts/domain"
)

// RoundValue rounds a valid value to the given number of decimal places
// using math.Round semantics: ties round half away from zero (0.00005
// rounds to 0.0001 at four digits). Missing values pass through
// unchanged. Rounding an already-rounded value is a no-op.
func RoundValue(v domain.Value, digits int) domain.Value {
	if !v.Valid {
		return v
	}
	scale := math.Pow(10, float64(digits))
	return domain.NewValue(math.Round(v.Float64*scale) / scale)
}

// RoundRows rounds every variable of every row in place.
func RoundRows(rows []domain.MonthlyRow, digits int) {
	for _, row := range rows {
		for variable, value := range row.Values {
			row.Values[variable] = RoundValue(value, digits)
		}
	}
}
