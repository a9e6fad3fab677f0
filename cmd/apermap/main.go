// Command apermap is the file-facing front end for the apermap
// library: it loads delimited aperture maps and serializes the core's
// in-memory outputs (graph triples, point data, statistics, renders)
// to files or stdout.
//
// Usage:
//
//	apermap stats fracture.txt --bins 10
//	apermap graph fracture.txt -o graph.csv
//	apermap points fracture.txt -o points.csv
//	apermap profile fracture.txt --axis z --index 12 -o cut.png
//	apermap heatmap fracture.txt -o map.png
//	apermap channels fracture.txt --threshold-min 0.05
//	apermap simstats run-stats.csv
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
