package exporter

import (
	"strconv"

	"modiscli/pkg/contracts/domain"
)

// dateFormat is the layout of the date column in both output formats.
const dateFormat = "2006-01-02"

// Headers returns the output column order: key columns, the variables in
// their fixed order, then the derived month-start date.
func Headers() []string {
	headers := []string{"name", "year", "month"}
	headers = append(headers, domain.OutputVariables()...)
	return append(headers, "date")
}

// formatValue renders a value for CSV output. Missing values become an
// empty field, never a sentinel or a zero.
func formatValue(v domain.Value) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

// csvRow converts one monthly row into CSV fields in header order.
func csvRow(row domain.MonthlyRow) []string {
	fields := []string{
		row.Key.Name,
		strconv.Itoa(row.Key.Year),
		strconv.Itoa(row.Key.Month),
	}
	for _, variable := range domain.OutputVariables() {
		fields = append(fields, formatValue(row.Values[variable]))
	}
	return append(fields, row.Date.Format(dateFormat))
}

// excelRow converts one monthly row into cell values in header order.
// Missing variables map to nil, which excelize writes as an empty cell.
func excelRow(row domain.MonthlyRow) []interface{} {
	cells := []interface{}{
		row.Key.Name,
		row.Key.Year,
		row.Key.Month,
	}
	for _, variable := range domain.OutputVariables() {
		value := row.Values[variable]
		if value.Valid {
			cells = append(cells, value.Float64)
		} else {
			cells = append(cells, nil)
		}
	}
	return append(cells, row.Date.Format(dateFormat))
}
