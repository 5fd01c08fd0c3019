package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"modiscli/internal/config"
	"modiscli/internal/infrastructure"
	"modiscli/internal/pipeline"
	"modiscli/pkg/contracts"
)

func main() {
	station := flag.String("station", "", "station identifier (selects input and output file names)")
	dir := flag.String("dir", "", "directory containing the GEE CSV exports (defaults to current directory)")
	out := flag.String("out", "", "output directory for the monthly workbook (defaults to Monthly_data)")
	csvMirror := flag.Bool("csv", false, "also write the monthly table as CSV")
	configPath := flag.String("config", "", "optional YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override both file and environment.
	if *station != "" {
		cfg.Station.ID = *station
	}
	if *dir != "" {
		cfg.Station.InputDir = *dir
	}
	if *out != "" {
		cfg.Export.OutputDir = *out
	}
	if *csvMirror {
		cfg.Export.CSVMirror = true
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting monthly MODIS aggregation",
		slog.String("station", cfg.Station.ID),
		slog.String("input_dir", cfg.Station.InputDir),
		slog.String("output_dir", cfg.Export.OutputDir))

	p := pipeline.New(cfg, logger)
	outputPath, err := p.Run(context.Background())
	if err != nil {
		logger.Error("Monthly aggregation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("Monthly MODIS aggregation successfully completed")
	fmt.Printf("Monthly MODIS dataset exported to: %s\n", outputPath)
}
