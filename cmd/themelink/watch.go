package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themelink/internal/config"
	"github.com/jmylchreest/themelink/internal/watch"
)

var watchOpts struct {
	format string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Link theme pages, then re-link whenever a page changes",
	Long: `Perform a link pass, then watch the themes directory and run another pass
after each burst of changes to its .html pages.

Links that already exist are never rewritten, so a box image added later
under a different extension is not picked up; fix such links by hand.
Pages written by themelink itself trigger one extra pass, which finds nothing
left to link.

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOpts.format, "format", "f", "",
		"Output format: plain, json, yaml (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	formatter, err := reportFormatter(cfg, watchOpts.format, false)
	if err != nil {
		return err
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	var mu sync.Mutex
	pass := func(ctx context.Context) {
		mu.Lock()
		defer mu.Unlock()

		report, err := linkOnce(ctx, cfg, false)
		if report != nil {
			writeReport(out, formatter, report)
		}
		if err != nil && ctx.Err() == nil {
			logger.Error("link pass failed", "error", err)
		}
	}

	pass(ctx)

	opts := watchOptions(cfg, debounce)
	opts.OnChange = func() { pass(ctx) }
	opts.Logger = logger

	w, err := watch.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", cfg.ThemesDir())
	return w.Run(ctx)
}

// watchOptions selects what watch mode reacts to. Only theme pages can
// produce new links; image changes never alter an existing link.
func watchOptions(cfg *config.Config, debounce time.Duration) watch.Options {
	return watch.Options{
		Dirs:     []string{cfg.ThemesDir()},
		Debounce: debounce,
		Match:    watch.HasExt(".html"),
	}
}
