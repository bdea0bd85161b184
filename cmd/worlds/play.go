package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/platform/tui"
	"github.com/vovakirdan/tui-worlds/internal/registry"
)

var (
	flagLevels   string
	flagStart    int
	flagSelect   bool
	flagWindow   bool
	flagFrontend string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level catalog",
	Long: `Play every level of the catalog in order, starting from the first
(or the one picked with --start / --select).

Controls:
  Left/A, Right/D    - Walk
  Space/Up/W         - Jump
  P                  - Pause (terminal)
  Ctrl+S             - Screenshot (terminal)
  Q/Esc/Ctrl+C       - Quit

Examples:
  worlds play
  worlds play --start 3
  worlds play --levels ./levels --select
  worlds play --window
  worlds play --frontend headless --script ./walk.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	playCmd.Flags().IntVar(&flagStart, "start", 1, "Level number to start from")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the start level from a list")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Shorthand for --frontend window")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "terminal", "Display frontend (see 'worlds list')")
	playCmd.Flags().StringVar(&flagScript, "script", "", "Input script for the headless frontend")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	name := flagFrontend
	if flagWindow {
		name = "window"
	}
	frontend, err := registry.Get(name)
	if err != nil {
		return fmt.Errorf("%w (run 'worlds list' to see frontends)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal frontend takes over the screen, so it logs to a file.
	var out io.Writer = os.Stderr
	if name == "terminal" {
		f, err := openLogFile()
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(flagLevels, cfg, logger)
	if err != nil {
		return err
	}

	start := flagStart - 1
	if flagSelect {
		width, height := terminalSize()
		start, err = tui.SelectLevel(cat, width, height)
		if errors.Is(err, tui.ErrSelectionCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("play", "frontend", name, "levels", cat.Len(), "start", start+1, "tick_rate", cfg.TickRate)
	outcome, err := frontend.Play(ctx, registry.Session{
		Catalog: cat,
		Start:   start,
		Config:  cfg,
		Logger:  logger,
		Script:  expandPath(flagScript),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("run ended", "outcome", outcome)
	printOutcome(outcome)
	return nil
}

func printOutcome(o core.Outcome) {
	switch o {
	case core.OutcomeVictory:
		fmt.Println(core.MessageVictory)
	case core.OutcomeDefeat:
		fmt.Println(core.MessageDefeat)
	}
}
