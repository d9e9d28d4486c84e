package cmd

import (
	"fmt"

	"github.com/galeworks/windreport/internal/report"
	"github.com/galeworks/windreport/internal/utils"
	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <file.csv>",
	Short: "Print the text analysis report (or write it with -o)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sum, err := runPipeline(args[0])
		if err != nil {
			return err
		}
		text := report.Render(sum, topN())
		if reportOut == "" {
			fmt.Print(text)
			return nil
		}
		if err := utils.SafeWriteFile(reportOut, []byte(text)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println("✓ Wrote", reportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "output file path (default prints to stdout)")
	reportCmd.Flags().IntVar(&anaTopN, "top", 0, "top-N group count (defaults to config top_n)")
	reportCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',', ';' or tab (default sniffed)")
}
