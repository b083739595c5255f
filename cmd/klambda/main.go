package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "klambda",
		Short:         "Read and run KLambda source files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "set the runtime context's Debug flag (no debug output is emitted)")

	root.AddCommand(newRunCmd(&debug))
	root.AddCommand(newReadCmd())
	root.AddCommand(newWatchCmd(&debug))
	root.AddCommand(newSnapshotCmd())
	return root
}
