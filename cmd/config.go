package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/galeworks/windreport/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set windreport configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("out_dir: %s\n", cfg.OutDir)
		fmt.Printf("plots_file: %s\n", cfg.PlotsFile)
		fmt.Printf("map_file: %s\n", cfg.MapFile)
		fmt.Printf("report_file: %s\n", cfg.ReportFile)
		fmt.Printf("histogram_bins: %d\n", cfg.HistogramBins)
		fmt.Printf("top_n: %d\n", cfg.TopN)
		fmt.Printf("map_zoom: %d\n", cfg.MapZoom)
		fmt.Printf("map_tile_url: %s\n", cfg.MapTileURL)
		if cfg.DecimalSeparator != "" {
			fmt.Printf("decimal_separator: %s\n", cfg.DecimalSeparator)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "out_dir":
			cfg.OutDir = val
		case "plots_file":
			cfg.PlotsFile = val
		case "map_file":
			cfg.MapFile = val
		case "report_file":
			cfg.ReportFile = val
		case "histogram_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for histogram_bins: %v", val)
			}
			cfg.HistogramBins = i
		case "top_n":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_n: %v", val)
			}
			cfg.TopN = i
		case "map_zoom":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for map_zoom: %v", val)
			}
			cfg.MapZoom = i
		case "map_tile_url":
			cfg.MapTileURL = val
		case "decimal_separator":
			switch val {
			case ".", ",", "":
				cfg.DecimalSeparator = val
			default:
				return fmt.Errorf("invalid decimal_separator: %s (use '.' or ',')", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
