package dataprocessing

import (
	"log/slog"
	"sort"

	"modiscli/pkg/contracts/domain"
)

// monthlyAccumulator carries the running sums of one station-month.
type monthlyAccumulator struct {
	sums   map[string]float64
	counts map[string]int
}

// MonthlyMeans groups observations by (name, year, month) and computes the
// arithmetic mean of each variable over the valid readings of the group.
// A variable with no valid readings in a month yields a missing mean.
// The result is sorted by (name, year, month) and each key appears once.
func MonthlyMeans(observations []domain.Observation, variables []string) []domain.MonthlyAggregate {
	groups := make(map[domain.MonthlyKey]*monthlyAccumulator)

	for _, obs := range observations {
		key := domain.MonthlyKey{Name: obs.Name, Year: obs.Year, Month: obs.Month}
		acc, ok := groups[key]
		if !ok {
			acc = &monthlyAccumulator{
				sums:   make(map[string]float64, len(variables)),
				counts: make(map[string]int, len(variables)),
			}
			groups[key] = acc
		}

		for _, variable := range variables {
			value := obs.Values[variable]
			if !value.Valid {
				continue
			}
			acc.sums[variable] += value.Float64
			acc.counts[variable]++
		}
	}

	aggregates := make([]domain.MonthlyAggregate, 0, len(groups))
	for key, acc := range groups {
		agg := domain.MonthlyAggregate{
			Key:    key,
			Means:  make(map[string]domain.Value, len(variables)),
			Counts: make(map[string]int, len(variables)),
		}
		for _, variable := range variables {
			count := acc.counts[variable]
			agg.Counts[variable] = count
			if count == 0 {
				agg.Means[variable] = domain.Value{}
				continue
			}
			agg.Means[variable] = domain.NewValue(acc.sums[variable] / float64(count))
		}
		aggregates = append(aggregates, agg)
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Key.Less(aggregates[j].Key)
	})

	slog.Debug("Computed monthly means",
		slog.Int("observations", len(observations)),
		slog.Int("months", len(aggregates)))

	return aggregates
}
