// Command linechart renders a line chart from a TOML configuration and a
// CSV data file to a PNG image.
//
// The CSV's header row names the series; each subsequent row is one
// sample per series:
//
//	latency,throughput
//	4,110
//	8,120
//	15,95
//
// Usage:
//
//	linechart render --config chart.toml --data data.csv -o chart.png
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/linechart/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "linechart",
		Short:        "linechart renders line charts to PNG images",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetupLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(cli.NewRenderCmd())

	return root.Execute()
}
