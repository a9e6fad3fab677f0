package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aperlab/apermap/pointdata"
)

var flagPointsOut string

var pointsCmd = &cobra.Command{
	Use:   "points <mapfile>",
	Short: "Export corner point data as CSV (z,x,blc,brc,trc,tlc)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoints,
}

func init() {
	pointsCmd.Flags().StringVarP(&flagPointsOut, "out", "o", "", "output file (default stdout)")
	addThresholdFlags(pointsCmd)
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(_ *cobra.Command, args []string) error {
	f, err := loadField(args[0])
	if err != nil {
		return err
	}
	pd, err := f.PointData()
	if err != nil {
		return err
	}

	out, err := openOut(flagPointsOut)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"z", "x", "blc", "brc", "trc", "tlc"}); err != nil {
		return err
	}
	for z := 0; z < pd.NZ; z++ {
		for x := 0; x < pd.NX; x++ {
			c := pd.Corners(z, x)
			rec := []string{
				strconv.Itoa(z),
				strconv.Itoa(x),
				strconv.FormatFloat(c[pointdata.BottomLeft], 'g', -1, 64),
				strconv.FormatFloat(c[pointdata.BottomRight], 'g', -1, 64),
				strconv.FormatFloat(c[pointdata.TopRight], 'g', -1, 64),
				strconv.FormatFloat(c[pointdata.TopLeft], 'g', -1, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write points: %w", err)
	}

	return nil
}
