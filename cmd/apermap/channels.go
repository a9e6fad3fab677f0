package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var channelsCmd = &cobra.Command{
	Use:   "channels <mapfile>",
	Short: "List connected flow channels (positive-aperture components)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChannels,
}

func init() {
	addThresholdFlags(channelsCmd)
	rootCmd.AddCommand(channelsCmd)
}

func runChannels(cmd *cobra.Command, args []string) error {
	f, err := loadField(args[0])
	if err != nil {
		return err
	}

	chans, err := f.Topology().Channels(f.Flat())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "channels: %d\n", len(chans))
	for i, ch := range chans {
		z0, x0 := f.Topology().Coordinate(ch[0])
		fmt.Fprintf(out, "channel %d: %d cells, seed (z=%d, x=%d)\n", i, len(ch), z0, x0)
	}

	return nil
}
