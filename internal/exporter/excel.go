package exporter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"modiscli/internal/errors"
	"modiscli/pkg/contracts/domain"
)

// sheetName is the single worksheet of the output workbook.
const sheetName = "Monthly"

// ExcelWriter writes the monthly table as an xlsx workbook.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance.
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteMonthly writes rows to an xlsx workbook at path, creating the
// destination directory if absent. The workbook holds one sheet with a
// header row followed by one row per station-month; missing variables
// are empty cells.
func (w *ExcelWriter) WriteMonthly(path string, rows []domain.MonthlyRow) error {
	w.logger.Info("Writing monthly workbook",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err).WithContext("path", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return errors.NewStorageError("failed to name worksheet", err)
	}

	header := make([]interface{}, 0, len(Headers()))
	for _, name := range Headers() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.NewStorageError("failed to write header row", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("failed to compute cell coordinate", err)
		}
		cells := excelRow(row)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return errors.NewStorageError("failed to write data row", err).WithContext("row", i)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	w.logger.Info("Monthly workbook written", slog.String("path", path))
	return nil
}
