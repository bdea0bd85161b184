package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/levels"
)

var flagWatch bool

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a directory of level files",
	Long: `Load every level file under the directory and report problems:
parse errors, unknown kinds, invalid geometry and duplicate IDs.

With --watch the directory is checked again whenever a level file changes.

Examples:
  worlds check ./levels
  worlds check ./levels --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-check when level files change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	loader := levels.NewLoader(expandPath(args[0]), logger)
	loader.Enemy = worlds.EnemyDefaults(cfg)

	err = checkOnce(loader)
	if !flagWatch {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchLevels(ctx, loader, logger)
}

// checkOnce loads the catalog and prints a summary.
func checkOnce(loader *levels.Loader) error {
	cat, err := loader.Catalog()
	if err != nil {
		return fmt.Errorf("level check failed:\n%w", err)
	}
	fmt.Printf("OK: %d levels in %s\n", cat.Len(), loader.Root)
	return nil
}

// watchLevels re-checks the directory on every change until ctx is done.
func watchLevels(ctx context.Context, loader *levels.Loader, logger *log.Logger) error {
	w, err := levels.NewWatcher(loader.Root)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching for changes", "root", loader.Root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			logger.Debug("changed", "file", path)
			if err := checkOnce(loader); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}
