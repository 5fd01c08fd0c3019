// Package pipeline orchestrates one aggregation run: load both MODIS
// time series for a station, collapse each to monthly means, merge them
// and export the result. The run is a single forward pass; the first
// error aborts it.
package pipeline

import (
	"context"
	"log/slog"

	"modiscli/internal/config"
	"modiscli/internal/dataprocessing"
	"modiscli/internal/exporter"
	"modiscli/pkg/contracts/domain"
)

// Pipeline holds the configuration and writers of one aggregation run.
type Pipeline struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
	excel  *exporter.ExcelWriter
	csv    *exporter.CSVWriter
}

// New creates a pipeline for the configured station.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:    cfg,
		paths:  config.NewPaths(cfg),
		logger: logger,
		excel:  exporter.NewExcelWriter(logger),
		csv:    exporter.NewCSVWriter(logger),
	}
}

// Paths returns the resolved paths of this run.
func (p *Pipeline) Paths() *config.Paths {
	return p.paths
}

// Run executes the aggregation and returns the path of the written
// workbook. All failures propagate to the caller; nothing is retried.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	p.logger.InfoContext(ctx, "starting monthly aggregation",
		slog.String("station", p.cfg.Station.ID),
		slog.String("file_16day", p.paths.File16Day),
		slog.String("file_8day", p.paths.File8Day))

	if err := p.paths.EnsureDirectories(); err != nil {
		return "", err
	}

	sentinel := p.cfg.Aggregation.MissingSentinel

	series16, err := dataprocessing.LoadSeries(p.paths.File16Day, domain.Vars16Day, sentinel)
	if err != nil {
		return "", err
	}
	series8, err := dataprocessing.LoadSeries(p.paths.File8Day, domain.Vars8Day, sentinel)
	if err != nil {
		return "", err
	}

	monthly16 := dataprocessing.MonthlyMeans(series16, domain.Vars16Day)
	monthly8 := dataprocessing.MonthlyMeans(series8, domain.Vars8Day)

	merged := dataprocessing.MergeMonthly(monthly16, monthly8)
	dataprocessing.RoundRows(merged, p.cfg.Aggregation.RoundDigits)

	p.logger.InfoContext(ctx, "monthly table assembled",
		slog.Int("months_16day", len(monthly16)),
		slog.Int("months_8day", len(monthly8)),
		slog.Int("merged_rows", len(merged)))

	if err := p.excel.WriteMonthly(p.paths.OutputXLSX, merged); err != nil {
		return "", err
	}

	if p.cfg.Export.CSVMirror {
		if err := p.csv.WriteMonthly(p.paths.OutputCSV, merged); err != nil {
			return "", err
		}
	}

	p.logger.InfoContext(ctx, "monthly aggregation completed",
		slog.String("output", p.paths.OutputXLSX),
		slog.Int("rows", len(merged)))

	return p.paths.OutputXLSX, nil
}
