package main

import (
	"fmt"
	"os"

	"github.com/klambda-lang/klambda/internal/config"
	"github.com/klambda-lang/klambda/internal/driver"
	"github.com/klambda-lang/klambda/internal/primitives"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/spf13/cobra"
)

func newRunCmd(debug *bool) *cobra.Command {
	var maxIter int
	var configPath string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Load and run a KLambda source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if *debug {
				cfg.Debug = true
			}
			if maxIter != 0 {
				cfg.MaxTrampolineIterations = maxIter
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			ctx := runtime.New()
			ctx.Debug = cfg.Debug
			ctx.MaxTrampolineIterations = cfg.MaxTrampolineIterations
			primitives.Register(ctx)

			results, err := driver.LoadString(ctx, string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], r.Err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d form(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxIter, "max-trampoline-iterations", 0, "bound on tail-recursive loop iterations (0 = keep the config value, which is unbounded by default)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML runtime config file")
	return cmd
}
