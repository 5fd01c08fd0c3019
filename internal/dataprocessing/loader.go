package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"modiscli/internal/errors"
	"modiscli/pkg/contracts/domain"
)

// dateLayouts are the calendar-date formats accepted for the date column.
// GEE exports use plain ISO dates; the remaining layouts cover exports
// re-saved by spreadsheet tools.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// keyColumns are required in every input table besides the variable columns.
var keyColumns = []string{"name", "date", "year", "month"}

// LoadSeries reads one MODIS time-series CSV export into observations.
// The header must carry the key columns (name, date, year, month) and
// every column named in variables; a missing column is a schema error.
// Variable cells equal to sentinel, empty, or unparseable are loaded as
// missing values. Key columns are strict: a bad date, year or month
// fails the load.
func LoadSeries(path string, variables []string, sentinel float64) ([]domain.Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("input file %s", path))
		}
		return nil, errors.NewStorageError("failed to open input file", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV header", err).WithContext("path", path)
	}

	columns, err := mapColumns(header, variables)
	if err != nil {
		return nil, err
	}

	var observations []domain.Observation
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read CSV row %d", line), err).WithContext("path", path)
		}

		obs, err := parseObservation(row, columns, variables, sentinel)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("row %d", line), err).WithContext("path", path)
		}
		observations = append(observations, obs)
	}

	slog.Info("Loaded time series",
		slog.String("path", path),
		slog.Int("observations", len(observations)),
		slog.Any("variables", variables))

	return observations, nil
}

// mapColumns maps header names to column indices and verifies that every
// required column is present. Header names are matched after trimming,
// with a BOM on the first cell stripped.
func mapColumns(header []string, variables []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}

	required := append(append([]string{}, keyColumns...), variables...)
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, errors.NewSchemaError(fmt.Sprintf("missing column %q", name), nil)
		}
	}
	return columns, nil
}

func parseObservation(row []string, columns map[string]int, variables []string, sentinel float64) (domain.Observation, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := parseDate(cell("date"))
	if err != nil {
		return domain.Observation{}, err
	}

	year, err := strconv.Atoi(cell("year"))
	if err != nil {
		return domain.Observation{}, fmt.Errorf("invalid year %q: %w", cell("year"), err)
	}
	month, err := strconv.Atoi(cell("month"))
	if err != nil {
		return domain.Observation{}, fmt.Errorf("invalid month %q: %w", cell("month"), err)
	}
	if month < 1 || month > 12 {
		return domain.Observation{}, fmt.Errorf("month %d out of range", month)
	}

	obs := domain.Observation{
		Name:   cell("name"),
		Date:   date,
		Year:   year,
		Month:  month,
		Values: make(map[string]domain.Value, len(variables)),
	}

	for _, variable := range variables {
		obs.Values[variable] = parseReading(cell(variable), sentinel)
	}

	return obs, nil
}

// parseReading converts one variable cell. Empty cells, non-numeric cells
// and the missing-value sentinel all load as a missing Value.
func parseReading(raw string, sentinel float64) domain.Value {
	if raw == "" {
		return domain.Value{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.Value{}
	}
	if f == sentinel {
		return domain.Value{}
	}
	return domain.NewValue(f)
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
