// Command lvmatch computes matchings of edge-list graphs and generates
// synthetic inputs.
//
//	lvmatch match [file] --mode cardinality|max|max-card|min|min-perfect
//	lvmatch gen --family random --n 20 --p 0.2 --seed 1
//
// Flags may also come from LVMATCH_* environment variables or a YAML file
// named by --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, err := newRootCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvmatch:", err)
		os.Exit(1)
	}
}
