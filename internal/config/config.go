package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OutDir     string `mapstructure:"out_dir" yaml:"out_dir"`
	PlotsFile  string `mapstructure:"plots_file" yaml:"plots_file"`
	MapFile    string `mapstructure:"map_file" yaml:"map_file"`
	ReportFile string `mapstructure:"report_file" yaml:"report_file"`

	HistogramBins int `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	TopN          int `mapstructure:"top_n" yaml:"top_n"`

	MapZoom    int    `mapstructure:"map_zoom" yaml:"map_zoom"`
	MapTileURL string `mapstructure:"map_tile_url" yaml:"map_tile_url"`

	// Numeric parsing locale for the capacity column; empty means
	// auto-detect per value.
	DecimalSeparator string `mapstructure:"decimal_separator" yaml:"decimal_separator"`
}

// Default returns the built-in configuration, the same values Load
// falls back to when no file or environment overrides exist.
func Default() *Global {
	return &Global{
		OutDir:        ".",
		PlotsFile:     "wind_analysis_plots.png",
		MapFile:       "wind_installations_map.html",
		ReportFile:    "analysis_report.txt",
		HistogramBins: 20,
		TopN:          3,
		MapZoom:       4,
		MapTileURL:    "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.windreport/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".windreport")
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
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WINDREPORT")
	v.AutomaticEnv()

	// Defaults
	def := Default()
	v.SetDefault("out_dir", def.OutDir)
	v.SetDefault("plots_file", def.PlotsFile)
	v.SetDefault("map_file", def.MapFile)
	v.SetDefault("report_file", def.ReportFile)
	v.SetDefault("histogram_bins", def.HistogramBins)
	v.SetDefault("top_n", def.TopN)
	v.SetDefault("map_zoom", def.MapZoom)
	v.SetDefault("map_tile_url", def.MapTileURL)
	v.SetDefault("decimal_separator", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".windreport")
		_ = os.MkdirAll(dir, 0o755)
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
