package main

import (
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/aperlab/apermap/field"
)

var (
	flagDelim   string
	flagVerbose bool

	flagThresholdMin float64
	flagThresholdMax float64
)

var rootCmd = &cobra.Command{
	Use:           "apermap",
	Short:         "Process 2-D aperture maps: graphs, point data, statistics, renders",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDelim, "delim", field.DelimAuto,
		"column delimiter (\"auto\" sniffs the first data line)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

// addThresholdFlags registers the optional pre-processing bounds on a
// map-consuming command.
func addThresholdFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagThresholdMin, "threshold-min", math.Inf(-1),
		"replace cells <= this value with NaN before processing")
	cmd.Flags().Float64Var(&flagThresholdMax, "threshold-max", math.Inf(1),
		"replace cells >= this value with NaN before processing")
}

// loadField reads the map at path with the global delimiter flag and
// applies any requested thresholding.
func loadField(path string) (*field.Field, error) {
	slog.Info("reading aperture map", "path", path)
	f, err := field.Load(path, field.Options{Delim: flagDelim})
	if err != nil {
		return nil, err
	}
	slog.Debug("map parsed", "nz", f.NZ, "nx", f.NX)

	opts := field.DefaultThresholdOptions()
	opts.Min = flagThresholdMin
	opts.Max = flagThresholdMax
	if !math.IsInf(opts.Min, -1) || !math.IsInf(opts.Max, 1) {
		replaced := f.Threshold(opts)
		slog.Info("threshold applied", "replaced", replaced)
	}

	return f, nil
}

// openOut returns the output sink for -o flags: the named file, or
// stdout when path is empty.
func openOut(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
