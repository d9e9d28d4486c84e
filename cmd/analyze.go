package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/galeworks/windreport/internal/chart"
	"github.com/galeworks/windreport/internal/dataset"
	"github.com/galeworks/windreport/internal/geomap"
	"github.com/galeworks/windreport/internal/report"
	"github.com/galeworks/windreport/internal/stats"
	"github.com/galeworks/windreport/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaPlotsFile  string
	anaMapFile    string
	anaReportFile string
	anaBins       int
	anaTopN       int
	anaDelimiter  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.csv>",
	Short: "Run the full pipeline: load, clean, aggregate, render all artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, sum, err := runPipeline(args[0])
		if err != nil {
			return err
		}

		if err := utils.EnsureDir(cfg.OutDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		plotsPath := filepath.Join(cfg.OutDir, pick(anaPlotsFile, cfg.PlotsFile))
		mapPath := filepath.Join(cfg.OutDir, pick(anaMapFile, cfg.MapFile))
		reportPath := filepath.Join(cfg.OutDir, pick(anaReportFile, cfg.ReportFile))

		if err := chart.WriteFile(plotsPath, tbl, sum, chartOptions()); err != nil {
			return fmt.Errorf("render plots: %w", err)
		}
		fmt.Println("✓ Wrote", plotsPath)

		if err := geomap.WriteFile(mapPath, tbl, mapOptions()); err != nil {
			return fmt.Errorf("render map: %w", err)
		}
		fmt.Println("✓ Wrote", mapPath)

		if err := report.WriteFile(reportPath, sum, topN()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println("✓ Wrote", reportPath)
		return nil
	},
}

// runPipeline executes load → clean → aggregate for a CSV source.
func runPipeline(path string) (*dataset.Table, *stats.Summary, error) {
	opt := dataset.Options{}
	switch anaDelimiter {
	case "":
		// sniffed from the file extension
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, nil, fmt.Errorf("unsupported delimiter %q (use ',', ';' or tab)", anaDelimiter)
	}

	tbl, err := dataset.ReadCSV(path, opt)
	if err != nil {
		return nil, nil, err
	}
	if err := dataset.Clean(tbl, dataset.CleanOptions{DecimalSeparator: decimalSeparator()}); err != nil {
		return nil, nil, err
	}
	sum := stats.Aggregate(tbl)
	if debug {
		fmt.Printf("loaded %d records (%d states) from %s\n", sum.TotalProjects, sum.DistinctStates, tbl.Name)
	}
	return tbl, sum, nil
}

func chartOptions() chart.Options {
	bins := anaBins
	if bins <= 0 {
		bins = cfg.HistogramBins
	}
	return chart.Options{Bins: bins}
}

func mapOptions() geomap.Options {
	return geomap.Options{Zoom: cfg.MapZoom, TileURL: cfg.MapTileURL}
}

func topN() int {
	if anaTopN > 0 {
		return anaTopN
	}
	return cfg.TopN
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaPlotsFile, "plots", "", "plots file name (defaults to config plots_file)")
	analyzeCmd.Flags().StringVar(&anaMapFile, "map", "", "map file name (defaults to config map_file)")
	analyzeCmd.Flags().StringVar(&anaReportFile, "report", "", "report file name (defaults to config report_file)")
	analyzeCmd.Flags().IntVar(&anaBins, "bins", 0, "histogram bin count (defaults to config histogram_bins)")
	analyzeCmd.Flags().IntVar(&anaTopN, "top", 0, "top-N group count in the report (defaults to config top_n)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',', ';' or tab (default sniffed)")
}
