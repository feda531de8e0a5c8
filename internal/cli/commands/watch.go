package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clarkmcc/surrealdb/pkg/token"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce collapses the burst of events an editor emits on save.
const watchDebounce = 100 * time.Millisecond

// watchInput renders path once, then again every time it is written, until
// the command context is cancelled.
func watchInput(cmd *cobra.Command, cmdCtx *CommandContext, kind token.Kind, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve input: %w", err)
	}
	if err := renderFile(cmd, kind, abs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	cmdCtx.Logger.Info("watching for changes", "path", abs)

	return watchLoop(cmd.Context(), watcher, abs, func() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "---")
		if err := renderFile(cmd, kind, abs); err != nil {
			cmdCtx.Logger.Error("render failed", "path", abs, "error", err)
		}
	})
}

// watchLoop calls rerender after writes to path settle. It returns nil when
// ctx is done and an error if the watcher fails.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, rerender func()) error {
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		case <-timer.C:
			rerender()
		}
	}
}

func renderFile(cmd *cobra.Command, kind token.Kind, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	values, err := readLines(f)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return renderValues(cmd, kind, values)
}
