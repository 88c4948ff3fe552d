package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statloom/newsstats-cli/internal/pipeline"
)

var (
	statsOutDir     string
	statsTopN       int
	statsBins       int
	statsTextColumn string
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Compute word-count statistics, charts, and a markdown report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		topN := c.TopN
		if statsTopN > 0 {
			topN = statsTopN
		}
		bins := c.HistogramBins
		if statsBins > 0 {
			bins = statsBins
		}

		res, err := pipeline.Run(pipeline.Config{
			InputPath:            args[0],
			OutDir:               statsOutDir,
			TopN:                 topN,
			HistogramBins:        bins,
			Percentiles:          c.Percentiles,
			TextColumn:           statsTextColumn,
			TextColumnCandidates: c.TextColumnCandidates,
			CategoryColumn:       c.CategoryColumn,
			DateColumn:           c.DateColumn,
			Progress: func(format string, args ...any) {
				fmt.Printf(format+"\n", args...)
			},
			Warn: func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, "⚠ Warning: "+format+"\n", args...)
			},
		})
		if err != nil {
			return err
		}

		fmt.Printf("Articles: %d\n", res.Rows)
		fmt.Printf("Output CSV: %s\n", res.CSVPath)
		fmt.Printf("Report: %s\n", res.ReportPath)
		for _, p := range res.ChartPaths {
			fmt.Printf("Chart: %s\n", p)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsOutDir, "outdir", "o", ".", "directory to write outputs (CSV, charts, report)")
	statsCmd.Flags().IntVar(&statsTopN, "top-n", 0, "size of the category ranking (overrides config)")
	statsCmd.Flags().IntVar(&statsBins, "bins", 0, "histogram bin count (overrides config)")
	statsCmd.Flags().StringVar(&statsTextColumn, "text-column", "", "column to count words in (default: resolve from candidates)")
	rootCmd.AddCommand(statsCmd)
}
