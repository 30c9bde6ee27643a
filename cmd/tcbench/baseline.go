package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"tcbench"
	"tcbench/baselines"
	"tcbench/textio"
)

func newBaselineCmd() *cobra.Command {
	var (
		useGemini bool
		model     string
		inPath    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "baseline TASK",
		Short: "Produce baseline predictions for a benchmark task",
		Long: "Produce baseline predictions for a benchmark task (" + tcbench.TaskNames() + "). " +
			"Reads input sequences from --input and writes one prediction per line to --output. " +
			"The default baseline is the per-task dummy; --gemini uses a chat completion instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := tcbench.ParseTask(args[0])
			if err != nil {
				return err
			}

			var baseline baselines.Baseline
			if useGemini {
				apiKey := os.Getenv("GEMINI_API_KEY")
				if apiKey == "" {
					return fmt.Errorf("GEMINI_API_KEY env variable must be set")
				}
				client, err := genai.NewClient(cmd.Context(), &genai.ClientConfig{
					Backend: genai.BackendGeminiAPI,
					APIKey:  apiKey,
				})
				if err != nil {
					return fmt.Errorf("create genai client: %w", err)
				}
				baseline, err = baselines.Gemini(baselines.GeminiOptions{
					Client: client,
					Model:  model,
					Task:   task,
				})
				if err != nil {
					return err
				}
			} else {
				baseline = baselines.Dummy(task)
			}

			sequences, err := textio.LoadLines(inPath)
			if err != nil {
				return err
			}
			predictions, err := baseline.Run(cmd.Context(), sequences)
			if err != nil {
				return fmt.Errorf("%s baseline: %w", baseline.Name(), err)
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer func() { _ = out.Close() }()
			w := bufio.NewWriter(out)
			for _, p := range predictions {
				if _, err := fmt.Fprintln(w, p); err != nil {
					return fmt.Errorf("write prediction: %w", err)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&useGemini, "gemini", false, "use the Gemini chat-completion baseline")
	cmd.Flags().StringVar(&model, "model", "gemini-2.5-flash", "Gemini model name")
	cmd.Flags().StringVarP(&inPath, "input", "i", "", "benchmark input file (corrupt.txt)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "prediction output file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
