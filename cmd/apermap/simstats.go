package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aperlab/apermap/field"
)

var simstatsCmd = &cobra.Command{
	Use:   "simstats <statfile>",
	Short: "Print the quantities recorded in a simulation statistics file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimstats,
}

func init() {
	rootCmd.AddCommand(simstatsCmd)
}

func runSimstats(cmd *cobra.Command, args []string) error {
	sf, err := field.LoadStatFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "map file: %s\n", sf.MapFile)
	fmt.Fprintf(out, "pvt file: %s\n\n", sf.PVTFile)
	for _, key := range sf.Keys {
		fmt.Fprintf(out, "%-24s %12g  [%s]\n", key, sf.Data[key], sf.Units[key])
	}

	return nil
}
