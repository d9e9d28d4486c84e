package cmd

import (
	"fmt"

	"github.com/galeworks/windreport/internal/geomap"
	"github.com/spf13/cobra"
)

var mapOut string

var mapCmd = &cobra.Command{
	Use:   "map <file.csv>",
	Short: "Render only the interactive installation map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, _, err := runPipeline(args[0])
		if err != nil {
			return err
		}
		out := mapOut
		if out == "" {
			out = cfg.MapFile
		}
		if err := geomap.WriteFile(out, tbl, mapOptions()); err != nil {
			return fmt.Errorf("render map: %w", err)
		}
		fmt.Println("✓ Wrote", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().StringVarP(&mapOut, "output", "o", "", "output HTML path")
	mapCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',', ';' or tab (default sniffed)")
}
