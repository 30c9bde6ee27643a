package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tcbench"
	"tcbench/report"
	"tcbench/textio"
)

func newEvaluateCmd() *cobra.Command {
	var (
		files         []string
		dir           string
		sortBy        string
		lowercase     bool
		lowercaseFile string
	)

	cmd := &cobra.Command{
		Use:   "evaluate BENCHMARK_DIR",
		Short: "Evaluate prediction files on a benchmark",
		Long: "Evaluate prediction files on a benchmark directory containing corrupt.txt " +
			"and correct.txt. The parent directory of BENCHMARK_DIR names the benchmark " +
			"type (" + tcbench.TaskNames() + "), which fixes the metric set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			benchmarkDir := args[0]

			task, err := tcbench.TaskFromBenchmarkPath(benchmarkDir)
			if err != nil {
				return err
			}

			predictions, err := predictionFiles(benchmarkDir, files, dir)
			if err != nil {
				return err
			}

			policy := textio.LowercaseNone()
			// Lowercasing only applies to spelling correction benchmarks
			// with lowercased references.
			if task.SupportsLowercase() {
				switch {
				case lowercaseFile != "":
					policy = textio.LowercaseFromFile(lowercaseFile)
				case lowercase:
					policy = textio.LowercaseAll()
				}
			}

			corruptedPath := filepath.Join(benchmarkDir, "corrupt.txt")
			groundtruthPath := filepath.Join(benchmarkDir, "correct.txt")

			entries := make([]report.Entry, 0, len(predictions))
			for _, predFile := range predictions {
				results, err := tcbench.Evaluate(corruptedPath, groundtruthPath, predFile, task.MetricNames(), policy)
				if err != nil {
					return fmt.Errorf("evaluate %s: %w", predFile, err)
				}
				name := strings.TrimSuffix(filepath.Base(predFile), filepath.Ext(predFile))
				entries = append(entries, report.Entry{Name: name, Results: results})
			}

			out, err := report.Render(task, filepath.Base(benchmarkDir), entries, sortBy)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "files", "f", nil, "prediction files to evaluate")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory containing prediction files")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort evaluations by the given metric display name")
	cmd.Flags().BoolVar(&lowercase, "lowercase", false, "lowercase predictions before evaluation (sec benchmarks only)")
	cmd.Flags().StringVar(&lowercaseFile, "lowercase-file", "", "file with a 0/1 lowercase flag per benchmark line")
	cmd.MarkFlagsMutuallyExclusive("files", "dir")
	cmd.MarkFlagsMutuallyExclusive("lowercase", "lowercase-file")
	return cmd
}

// predictionFiles resolves the prediction files to evaluate: an explicit
// file list, a directory, or the benchmark's predictions subdirectory.
func predictionFiles(benchmarkDir string, files []string, dir string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}
	if dir == "" {
		dir = filepath.Join(benchmarkDir, "predictions")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list prediction files: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no prediction files in %s", dir)
	}
	return out, nil
}
