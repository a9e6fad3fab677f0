package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/aperlab/apermap/stats"
)

var (
	flagPercentiles []float64
	flagBins        int
)

var statsCmd = &cobra.Command{
	Use:   "stats <mapfile>",
	Short: "Print percentiles and a histogram of an aperture map",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Float64SliceVar(&flagPercentiles, "percentiles",
		[]float64{1, 10, 25, 50, 75, 90, 99}, "percentiles to report")
	statsCmd.Flags().IntVar(&flagBins, "bins", 10, "histogram bin count")
	addThresholdFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	f, err := loadField(args[0])
	if err != nil {
		return err
	}

	data := stats.Finite(f.Flat())
	if len(data) == 0 {
		return stats.ErrEmptyDataset
	}
	slog.Debug("finite cells", "count", len(data), "total", f.NZ*f.NX)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "map: %s (%d x %d)\n", args[0], f.NZ, f.NX)
	fmt.Fprintf(out, "min: %g  max: %g\n", floats.Min(data), floats.Max(data))

	fmt.Fprintln(out, "\npercentile  value")
	for _, p := range flagPercentiles {
		v, err := stats.PercentileOfValue(p, data, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%9.1f%%  %g\n", p, v)
	}

	counts, dividers, err := stats.Histogram(data, flagBins)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nbin range            count")
	for i, c := range counts {
		fmt.Fprintf(out, "[%g, %g)  %.0f\n", dividers[i], dividers[i+1], c)
	}

	return nil
}
