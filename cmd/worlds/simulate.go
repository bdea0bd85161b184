package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/platform/headless"
)

// fastTickRate is the loop rate used by simulate unless --realtime is set.
const fastTickRate = 10000

var (
	flagScript   string
	flagIdle     int
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a scripted run without a display",
	Long: `Run the game loop headless, feeding input from a YAML script, and
print how the run ended. Useful for checking levels and for reproducing runs.

Script format:
  quit_after: 600      # optional, defaults to the total of the steps
  steps:
    - ticks: 40
      right: true
    - ticks: 10
      right: true
      jump: true

Examples:
  worlds simulate --script ./walk.yaml
  worlds simulate --idle 300 --levels ./levels --start 2`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input script (YAML)")
	simulateCmd.Flags().IntVar(&flagIdle, "idle", 0, "Stand still for this many ticks instead of a script")
	simulateCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	simulateCmd.Flags().IntVar(&flagStart, "start", 1, "Level number to start from")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at the configured tick rate instead of flat out")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	var script headless.Script
	switch {
	case flagScript != "":
		s, err := headless.LoadScript(expandPath(flagScript))
		if err != nil {
			return err
		}
		script = s
	case flagIdle > 0:
		script = headless.IdleScript(flagIdle)
	default:
		return errors.New("either --script or --idle is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(flagLevels, cfg, logger)
	if err != nil {
		return err
	}
	run, err := core.NewRunAt(cat, worlds.Settings(cfg), flagStart-1)
	if err != nil {
		return err
	}

	loopCfg := worlds.LoopConfig(cfg)
	loopCfg.EndScreen = 0
	if !flagRealtime {
		loopCfg.TickRate = fastTickRate
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := headless.Play(ctx, run, script, loopCfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Outcome: %s\n", res.Outcome)
	fmt.Printf("Ticks:   %d\n", res.Ticks)
	fmt.Printf("Level:   %s (%d/%d)\n", res.Level, res.Snapshot.LevelIndex+1, cat.Len())
	fmt.Printf("Lives:   %d\n", res.Lives)
	fmt.Printf("Player:  (%d, %d)\n", res.Snapshot.PlayerX, res.Snapshot.PlayerY)
	fmt.Printf("Hash:    %016x\n", res.Snapshot.Hash())
	if res.Message != "" {
		fmt.Println(res.Message)
	}
	return nil
}
