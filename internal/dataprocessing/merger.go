package dataprocessing

import (
	"sort"
	"time"

	"modiscli/pkg/contracts/domain"
)

// MergeMonthly performs a full outer join of two monthly aggregate tables
// on (name, year, month). Every key of either side appears exactly once in
// the result; variables of an absent side stay missing. Each row carries
// the first calendar day of its month (UTC) as its date. The result is
// sorted by (name, year, month).
func MergeMonthly(left, right []domain.MonthlyAggregate) []domain.MonthlyRow {
	rows := make(map[domain.MonthlyKey]*domain.MonthlyRow, len(left)+len(right))

	join := func(aggregates []domain.MonthlyAggregate) {
		for _, agg := range aggregates {
			row, ok := rows[agg.Key]
			if !ok {
				row = &domain.MonthlyRow{
					Key:    agg.Key,
					Values: make(map[string]domain.Value),
					Date:   monthStart(agg.Key.Year, agg.Key.Month),
				}
				rows[agg.Key] = row
			}
			for variable, mean := range agg.Means {
				row.Values[variable] = mean
			}
		}
	}
	join(left)
	join(right)

	merged := make([]domain.MonthlyRow, 0, len(rows))
	for _, row := range rows {
		merged = append(merged, *row)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Key.Less(merged[j].Key)
	})

	return merged
}

// monthStart returns the first calendar day of the given month, UTC midnight.
func monthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
