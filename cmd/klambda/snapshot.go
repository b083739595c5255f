package main

import (
	"fmt"
	"os"

	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/snapshot"
	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <file>",
		Short: "Print the SHA-256 digest of a file's canonical parsed form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			forms, _, err := reader.ReadAll(string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			nodes, err := snapshot.OfForms(forms)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			digest, err := snapshot.Hash(nodes)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", digest)
			return nil
		},
	}
}
