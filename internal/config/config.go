package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const dirName = ".iris-cli"

// Global configuration structure.
type Global struct {
	// DataPath is a CSV/TSV/XLSX dataset; empty uses the built-in Iris data.
	DataPath string `mapstructure:"data_path" yaml:"data_path"`
	// Sheet selects the XLSX sheet; empty means the first sheet.
	Sheet     string `mapstructure:"sheet" yaml:"sheet"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Charts
	ChartFormat   string  `mapstructure:"chart_format" yaml:"chart_format"`
	ChartWidthCm  float64 `mapstructure:"chart_width_cm" yaml:"chart_width_cm"`
	ChartHeightCm float64 `mapstructure:"chart_height_cm" yaml:"chart_height_cm"`
	HistBins      int     `mapstructure:"hist_bins" yaml:"hist_bins"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Dir returns ~/.iris-cli.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.iris-cli/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("IRIS")
	v.AutomaticEnv()

	v.SetDefault("data_path", "")
	v.SetDefault("sheet", "")
	v.SetDefault("output_dir", "iris_output")
	v.SetDefault("chart_format", "png")
	v.SetDefault("chart_width_cm", 16.0)
	v.SetDefault("chart_height_cm", 12.0)
	v.SetDefault("hist_bins", 10)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Validate checks value ranges that viper cannot express. Load does not call
// it; callers validate after applying flag overrides.
func (c *Global) Validate() error {
	switch strings.ToLower(c.ChartFormat) {
	case "png", "svg", "pdf", "html":
	default:
		return fmt.Errorf("invalid chart_format: %s (use png, svg, pdf or html)", c.ChartFormat)
	}
	if c.ChartWidthCm <= 0 || c.ChartHeightCm <= 0 {
		return fmt.Errorf("chart size must be positive, got %.1fx%.1f cm", c.ChartWidthCm, c.ChartHeightCm)
	}
	if c.HistBins < 1 {
		return fmt.Errorf("hist_bins must be >= 1, got %d", c.HistBins)
	}
	return nil
}
