package main

import (
	"fmt"
	"os"

	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/values"
	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <file>",
		Short: "Parse a KLambda source file and print its top-level forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			forms, sani, err := reader.ReadAll(string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, f := range forms {
				fmt.Fprintln(cmd.OutOrStdout(), values.Print(f, sani.Unrename))
			}
			return nil
		},
	}
}
