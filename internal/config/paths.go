package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the resolved file paths of one pipeline run.
// This is the single source of truth for input and output locations;
// nothing else in the application builds file names.
type Paths struct {
	InputDir  string
	OutputDir string

	// Input time series, named by station ID as exported from GEE.
	File16Day string
	File8Day  string

	// Output workbook and its optional CSV mirror.
	OutputXLSX string
	OutputCSV  string
}

// NewPaths resolves all paths for the configured station.
func NewPaths(cfg *Config) *Paths {
	station := cfg.Station.ID
	return &Paths{
		InputDir:   cfg.Station.InputDir,
		OutputDir:  cfg.Export.OutputDir,
		File16Day:  filepath.Join(cfg.Station.InputDir, fmt.Sprintf("MODIS_TimeSeries_16Day_%s.csv", station)),
		File8Day:   filepath.Join(cfg.Station.InputDir, fmt.Sprintf("MODIS_TimeSeries_8Day_%s.csv", station)),
		OutputXLSX: filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("MODIS_Monthly_%s.xlsx", station)),
		OutputCSV:  filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("MODIS_Monthly_%s.csv", station)),
	}
}

// EnsureDirectories creates the output directory if it does not exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}
