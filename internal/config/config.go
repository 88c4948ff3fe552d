package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/statloom/newsstats-cli/internal/stats"
)

// Global configuration structure. Everything the pipeline needs beyond the
// input path and output directory lives here, so no component carries
// hardcoded paths or magic defaults of its own.
type Global struct {
	TopN                 int       `mapstructure:"top_n" yaml:"top_n"`
	HistogramBins        int       `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	Percentiles          []float64 `mapstructure:"percentiles" yaml:"percentiles"`
	TextColumnCandidates []string  `mapstructure:"text_column_candidates" yaml:"text_column_candidates"`
	CategoryColumn       string    `mapstructure:"category_column" yaml:"category_column"`
	DateColumn           string    `mapstructure:"date_column" yaml:"date_column"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.newsstats/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".newsstats")
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
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NEWSSTATS")
	v.AutomaticEnv()

	v.SetDefault("top_n", 10)
	v.SetDefault("histogram_bins", 50)
	v.SetDefault("percentiles", stats.DefaultPercentiles)
	v.SetDefault("text_column_candidates", stats.DefaultTextColumns)
	v.SetDefault("category_column", "source")
	v.SetDefault("date_column", "published")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".newsstats"))
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

// Defaults returns the built-in configuration without touching the
// filesystem or environment.
func Defaults() *Global {
	return &Global{
		TopN:                 10,
		HistogramBins:        50,
		Percentiles:          append([]float64(nil), stats.DefaultPercentiles...),
		TextColumnCandidates: append([]string(nil), stats.DefaultTextColumns...),
		CategoryColumn:       "source",
		DateColumn:           "published",
	}
}
