package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/galeworks/windreport/internal/chart"
	"github.com/galeworks/windreport/internal/dataset"
	"github.com/galeworks/windreport/internal/report"
	"github.com/galeworks/windreport/internal/stats"
	"github.com/galeworks/windreport/internal/utils"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Analyze the embedded demo dataset",
	Long:  `Runs the aggregation and chart pipeline over the embedded eight-row demo table and prints the analysis report. The demo table carries no coordinates, so no map is rendered.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl := dataset.Sample()
		sum := stats.Aggregate(tbl)

		if err := utils.EnsureDir(cfg.OutDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		plotsPath := filepath.Join(cfg.OutDir, cfg.PlotsFile)
		if err := chart.WriteFile(plotsPath, tbl, sum, chartOptions()); err != nil {
			return fmt.Errorf("render plots: %w", err)
		}
		fmt.Println("✓ Wrote", plotsPath)

		fmt.Print(report.Render(sum, topN()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntVar(&anaBins, "bins", 0, "histogram bin count (defaults to config histogram_bins)")
	sampleCmd.Flags().IntVar(&anaTopN, "top", 0, "top-N group count (defaults to config top_n)")
}
