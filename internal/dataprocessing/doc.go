// Package dataprocessing implements the monthly aggregation of MODIS
// station time series.
//
// The package is organized around three operations:
//
// 1. LoadSeries: reads a GEE CSV export into observations, replacing
// sentinel and unparseable readings with missing values
// 2. MonthlyMeans: groups observations by (name, year, month) and
// averages the valid readings of each variable
// 3. MergeMonthly: outer-joins the 8-day and 16-day monthly tables and
// derives the month-start date
//
// The typical data flow:
//
//	CSV export → LoadSeries → Observations → MonthlyMeans → MonthlyAggregates → MergeMonthly → MonthlyRows
//
// Missing readings are represented as invalid domain.Value everywhere
// past the loader; no sentinel value survives into aggregation.
package dataprocessing
