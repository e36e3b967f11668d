// plotplan-cli is the headless companion to the PlotPlan desktop app:
// it generates layouts from a saved site file and writes exports
// without starting the GUI.
package main

import (
	"fmt"
	"os"

	"github.com/nadzri/plotplan/internal/cli"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
