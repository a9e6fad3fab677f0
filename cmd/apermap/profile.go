package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aperlab/apermap/render"
	"github.com/aperlab/apermap/stats"
)

var (
	flagProfileAxis  string
	flagProfileIndex int
	flagProfileOut   string
)

var profileCmd = &cobra.Command{
	Use:   "profile <mapfile>",
	Short: "Extract a row or column profile cut, as text or PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagProfileAxis, "axis", "row",
		"cut direction: row/x or column/z")
	profileCmd.Flags().IntVar(&flagProfileIndex, "index", 1,
		"1-based row or column index (clamped to the map extent)")
	profileCmd.Flags().StringVarP(&flagProfileOut, "out", "o", "",
		"PNG output file (default: print values to stdout)")
	addThresholdFlags(profileCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	axis, err := stats.ParseAxis(flagProfileAxis)
	if err != nil {
		return err
	}
	f, err := loadField(args[0])
	if err != nil {
		return err
	}

	cut, err := stats.AxisSlice(f.Flat(), f.NZ, f.NX, axis, flagProfileIndex)
	if err != nil {
		return err
	}

	if flagProfileOut == "" {
		vals := make([]string, len(cut))
		for i, v := range cut {
			vals[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(vals, ","))

		return nil
	}

	title := fmt.Sprintf("%s %d profile", axis, flagProfileIndex)
	png, err := render.Profile(cut, title, "cell", "aperture")
	if err != nil {
		return err
	}

	return writeFile(flagProfileOut, png)
}
