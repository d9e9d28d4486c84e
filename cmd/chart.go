package cmd

import (
	"fmt"

	"github.com/galeworks/windreport/internal/chart"
	"github.com/spf13/cobra"
)

var chartOut string

var chartCmd = &cobra.Command{
	Use:   "chart <file.csv>",
	Short: "Render only the four-panel chart image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, sum, err := runPipeline(args[0])
		if err != nil {
			return err
		}
		out := chartOut
		if out == "" {
			out = cfg.PlotsFile
		}
		if err := chart.WriteFile(out, tbl, sum, chartOptions()); err != nil {
			return fmt.Errorf("render plots: %w", err)
		}
		fmt.Println("✓ Wrote", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVarP(&chartOut, "output", "o", "", "output PNG path")
	chartCmd.Flags().IntVar(&anaBins, "bins", 0, "histogram bin count (defaults to config histogram_bins)")
	chartCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',', ';' or tab (default sniffed)")
}
