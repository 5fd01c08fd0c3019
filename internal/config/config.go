package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// Layering: Default() values, overridden by an optional YAML file,
// overridden by MODIS_* environment variables.
type Config struct {
	Station     StationConfig     `yaml:"station" envconfig:"STATION"`
	Aggregation AggregationConfig `yaml:"aggregation" envconfig:"AGGREGATION"`
	Export      ExportConfig      `yaml:"export" envconfig:"EXPORT"`
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
}

// StationConfig selects the station whose time series are aggregated.
// The station ID names both input files and the output workbook.
type StationConfig struct {
	ID       string `yaml:"id" envconfig:"ID" validate:"required"`
	InputDir string `yaml:"input_dir" envconfig:"INPUT_DIR"`
}

// AggregationConfig contains the numeric conventions of the pipeline.
type AggregationConfig struct {
	// MissingSentinel is the raw value treated as an absent reading.
	// GEE exports encode invalid pixels as -9999.
	MissingSentinel float64 `yaml:"missing_sentinel" envconfig:"MISSING_SENTINEL"`
	RoundDigits     int     `yaml:"round_digits" envconfig:"ROUND_DIGITS" validate:"min=0,max=10"`
}

// ExportConfig contains output configuration.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	// CSVMirror additionally writes the monthly table as CSV next to the
	// workbook, for grep/diff workflows on the exported data.
	CSVMirror bool `yaml:"csv_mirror" envconfig:"CSV_MIRROR"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json console"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration from the optional YAML file at configPath and
// from environment variables. Environment variables take precedence over
// the file; the file takes precedence over defaults. An empty configPath
// skips the file layer entirely. Load does not validate: callers apply
// their own overrides (CLI flags) first, then call Validate.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := loadFromFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("MODIS", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}

// loadFromFile unmarshals the YAML file over the current config values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config validation failed on %s (%s)", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Default returns default configuration. The station ID has no default;
// it must come from the file, the environment, or a flag.
func Default() *Config {
	return &Config{
		Station: StationConfig{
			InputDir: ".",
		},
		Aggregation: AggregationConfig{
			MissingSentinel: -9999,
			RoundDigits:     4,
		},
		Export: ExportConfig{
			OutputDir: "Monthly_data",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "console",
			Output:   "stdout",
			FilePath: "logs/modisagg.log",
		},
	}
}
