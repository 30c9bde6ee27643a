// Command tcbench evaluates text-correction model outputs against benchmark
// ground truth, and ships the supporting tooling: benchmark download,
// baseline prediction and tokenization.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "tcbench",
		Short:         "Benchmarks for text correction models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEvaluateCmd(),
		newDownloadCmd(),
		newBaselineCmd(),
		newTokenizeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
