package main

import (
	"fmt"
	"os"

	language "cloud.google.com/go/language/apiv1"
	"github.com/spf13/cobra"

	"tcbench/tokenize"
)

func newTokenizeCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize a text file with the Cloud Natural Language API",
		Long: "Tokenize a text file line by line and write the whitespace-joined tokens, " +
			"so that model outputs and references agree on token boundaries. " +
			"Requires Google Cloud credentials in the environment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := language.NewClient(cmd.Context())
			if err != nil {
				return fmt.Errorf("create language client: %w", err)
			}
			defer func() { _ = client.Close() }()

			in, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer func() { _ = in.Close() }()

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer func() { _ = out.Close() }()

			return tokenize.New(client).File(cmd.Context(), in, out)
		},
	}

	cmd.Flags().StringVarP(&inPath, "file", "f", "", "input text file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
