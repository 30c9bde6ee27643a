package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tcbench/download"
)

func newDownloadCmd() *cobra.Command {
	var (
		manifestPath string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "download OUTPUT_DIR",
		Short: "Download and extract the benchmark archives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := download.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			opts := download.Options{OutputDir: args[0], Force: force}
			if err := download.Fetch(cmd.Context(), manifest, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "downloaded and extracted %d benchmark archives to %s\n",
				len(manifest.Benchmarks), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "benchmarks.yaml", "YAML manifest listing benchmark archives")
	cmd.Flags().BoolVarP(&force, "force-download", "f", false, "re-download archives even if already cached")
	return cmd
}
