package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aperlab/apermap/render"
)

var flagHeatmapOut string

var heatmapCmd = &cobra.Command{
	Use:   "heatmap <mapfile>",
	Short: "Render the aperture map as a PNG heatmap",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeatmap,
}

func init() {
	heatmapCmd.Flags().StringVarP(&flagHeatmapOut, "out", "o", "", "PNG output file (required)")
	_ = heatmapCmd.MarkFlagRequired("out")
	addThresholdFlags(heatmapCmd)
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(_ *cobra.Command, args []string) error {
	f, err := loadField(args[0])
	if err != nil {
		return err
	}

	png, err := render.Heatmap(f, filepath.Base(args[0]))
	if err != nil {
		return err
	}

	return writeFile(flagHeatmapOut, png)
}

// writeFile saves rendered bytes, logging the destination.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("wrote", "path", path, "bytes", len(data))

	return nil
}
