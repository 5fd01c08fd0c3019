// Package exporter writes the merged monthly table to disk, as an Excel
// workbook (the primary output) and optionally as a CSV mirror. Both
// writers create the destination directory before writing and emit the
// same column order: name, year, month, the six variables, date.
package exporter
