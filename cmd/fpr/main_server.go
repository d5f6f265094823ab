package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/fpr/internal/corpus"
	"github.com/standardbeagle/fpr/internal/mcp"
	"github.com/standardbeagle/fpr/internal/metrics"
)

// serveCommand runs the MCP server over stdio until interrupted.
func serveCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	mem, batch, err := buildBatchResolver(c.Context, cfg)
	if err != nil {
		return err
	}

	stats := metrics.NewResolutionStats()
	batch.SetStats(stats)

	if cfg.Corpus.WatchMode {
		scanner := corpus.NewScanner(cfg.Project.Root, cfg.Corpus.Include, cfg.Corpus.Exclude)
		debounce := time.Duration(cfg.Corpus.WatchDebounceMs) * time.Millisecond
		watcher, err := corpus.NewWatcher(mem, scanner, debounce)
		if err != nil {
			return fmt.Errorf("failed to create corpus watcher: %w", err)
		}
		if err := watcher.Start(cfg.Project.Root); err != nil {
			return fmt.Errorf("failed to start corpus watcher: %w", err)
		}
		defer watcher.Stop()
	}

	srv := mcp.NewServer(cfg, mem, batch, stats)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "fpr MCP server ready (root: %s, %d identifiers)\n",
		cfg.Project.Root, mem.Len())

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
