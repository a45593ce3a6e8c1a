package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	blifecycle "github.com/aretw0/bower/pkg/adapters/lifecycle"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow external changes to the store file",
	Long: `Watch the store file and reload the notebook whenever another process
changes it. Runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := openNotebook(true)
		if err != nil {
			fatal("Error opening notebook", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := nb.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		src := blifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")
		for e := range src.Events() {
			change, ok := e.(blifecycle.Change)
			if !ok {
				continue
			}
			if change.Action == blifecycle.ActionReset {
				slog.Warn("store file removed, resetting", "file", change.Name)
			} else {
				slog.Info("store changed, reloading", "file", change.Name)
			}
			// Reload covers both actions: an absent store yields a fresh
			// root-only notebook.
			if err := nb.Reload(ctx); err != nil {
				slog.Error("reload failed", "error", err)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob pattern for files to watch (default: the store file)")
	rootCmd.AddCommand(watchCmd)
}
