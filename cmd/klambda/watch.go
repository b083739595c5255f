package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/klambda-lang/klambda/internal/driver"
	"github.com/klambda-lang/klambda/internal/primitives"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/spf13/cobra"
)

func newWatchCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Reload and run a KLambda source file on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}

			runOnce(path, *debug)
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(path) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					runOnce(path, *debug)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "watch: %s\n", err)
				}
			}
		},
	}
}

func runOnce(path string, debug bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		return
	}

	ctx := runtime.New()
	ctx.Debug = debug
	primitives.Register(ctx)

	results, err := driver.LoadString(ctx, string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		return
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, r.Err)
		}
	}
}
