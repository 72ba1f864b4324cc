package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/banshee-data/sirta/internal/lidar"
	"github.com/banshee-data/sirta/internal/units"
)

// DefaultConfigPath is the path to the canonical analysis defaults file.
const DefaultConfigPath = "config/sirta.defaults.json"

// EnvPrefix prefixes every environment override, e.g. SIRTA_HEIGHT.
const EnvPrefix = "SIRTA"

// DateLayout is the layout of ReferenceDate.
const DateLayout = "2006-01-02"

// Defaults applied by the Get* methods when a field is unset.
const (
	DefaultAnemometerFile = "anemometer.csv"
	DefaultLidarFile      = "Doppler-lidar_Wind-profile_SIRTA_2014-2015.txt"
	DefaultHeight         = 80
	DefaultOutputDir      = "plots"
	DefaultPlotFormat     = "png"
	DefaultColor          = "k"
)

var plotFormats = []string{"png", "svg", "pdf"}

// AnalysisConfig holds the inputs and plot settings of a run. Every field is
// optional; the Get* methods supply defaults for unset fields, so partial
// configs are safe.
type AnalysisConfig struct {
	AnemometerFile *string `json:"anemometer_file,omitempty" yaml:"anemometer_file,omitempty" envconfig:"ANEMOMETER_FILE"`
	LidarFile      *string `json:"lidar_file,omitempty" yaml:"lidar_file,omitempty" envconfig:"LIDAR_FILE"`

	// Height is the lidar sample height in metres.
	Height *int `json:"height,omitempty" yaml:"height,omitempty" envconfig:"HEIGHT"`

	// ReferenceDate anchors the elapsed-hours axis of day plots. Unset, each
	// day is measured from its own midnight.
	ReferenceDate *string `json:"reference_date,omitempty" yaml:"reference_date,omitempty" envconfig:"REFERENCE_DATE"`

	Unit       *string `json:"unit,omitempty" yaml:"unit,omitempty" envconfig:"UNIT"`
	OutputDir  *string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" envconfig:"OUTPUT_DIR"`
	PlotFormat *string `json:"plot_format,omitempty" yaml:"plot_format,omitempty" envconfig:"PLOT_FORMAT"`
	Color      *string `json:"color,omitempty" yaml:"color,omitempty" envconfig:"COLOR"`
	LogScale   *bool   `json:"log_scale,omitempty" yaml:"log_scale,omitempty" envconfig:"LOG_SCALE"`
}

// EmptyAnalysisConfig returns an AnalysisConfig with all fields set to nil.
func EmptyAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// LoadAnalysisConfig loads an AnalysisConfig from a .json, .yaml or .yml
// file no larger than 1MB.
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyAnalysisConfig()
	if ext == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath.
// It searches the current directory and common parent directories and
// panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *AnalysisConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadAnalysisConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// ApplyEnv overlays PREFIX_* environment variables onto c. Unset variables
// leave the corresponding fields untouched.
func (c *AnalysisConfig) ApplyEnv(prefix string) error {
	if err := envconfig.Process(prefix, c); err != nil {
		return fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration from env: %w", err)
	}
	return nil
}

// Validate checks that the configuration values are valid.
func (c *AnalysisConfig) Validate() error {
	if c.Height != nil {
		if _, err := lidar.HeightField(*c.Height); err != nil {
			return fmt.Errorf("height: %w", err)
		}
	}

	if c.ReferenceDate != nil && *c.ReferenceDate != "" {
		if _, err := time.Parse(DateLayout, *c.ReferenceDate); err != nil {
			return fmt.Errorf("invalid reference_date '%s': %w", *c.ReferenceDate, err)
		}
	}

	if c.Unit != nil && !units.IsValid(*c.Unit) {
		return fmt.Errorf("unit must be one of %s, got %q", units.GetValidUnitsString(), *c.Unit)
	}

	if c.PlotFormat != nil {
		ok := false
		for _, f := range plotFormats {
			if *c.PlotFormat == f {
				ok = true
			}
		}
		if !ok {
			return fmt.Errorf("plot_format must be one of %s, got %q", strings.Join(plotFormats, ", "), *c.PlotFormat)
		}
	}

	return nil
}

// GetAnemometerFile returns the anemometer_file value or the default.
func (c *AnalysisConfig) GetAnemometerFile() string {
	if c.AnemometerFile == nil || *c.AnemometerFile == "" {
		return DefaultAnemometerFile
	}
	return *c.AnemometerFile
}

// GetLidarFile returns the lidar_file value or the default.
func (c *AnalysisConfig) GetLidarFile() string {
	if c.LidarFile == nil || *c.LidarFile == "" {
		return DefaultLidarFile
	}
	return *c.LidarFile
}

// GetHeight returns the height value or the default.
func (c *AnalysisConfig) GetHeight() int {
	if c.Height == nil {
		return DefaultHeight
	}
	return *c.Height
}

// GetReferenceDate parses ReferenceDate as midnight UTC. ok is false when it
// is unset or unparsable.
func (c *AnalysisConfig) GetReferenceDate() (ref time.Time, ok bool) {
	if c.ReferenceDate == nil || *c.ReferenceDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, *c.ReferenceDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GetUnit returns the unit value or the default.
func (c *AnalysisConfig) GetUnit() string {
	if c.Unit == nil || *c.Unit == "" {
		return units.MPS
	}
	return *c.Unit
}

// GetOutputDir returns the output_dir value or the default.
func (c *AnalysisConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return DefaultOutputDir
	}
	return *c.OutputDir
}

// GetPlotFormat returns the plot_format value or the default.
func (c *AnalysisConfig) GetPlotFormat() string {
	if c.PlotFormat == nil || *c.PlotFormat == "" {
		return DefaultPlotFormat
	}
	return *c.PlotFormat
}

// GetColor returns the color value or the default.
func (c *AnalysisConfig) GetColor() string {
	if c.Color == nil || *c.Color == "" {
		return DefaultColor
	}
	return *c.Color
}

// GetLogScale returns the log_scale value or the default.
func (c *AnalysisConfig) GetLogScale() bool {
	if c.LogScale == nil {
		return false
	}
	return *c.LogScale
}
