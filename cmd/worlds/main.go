// worlds is a small platform game that runs in the terminal or a desktop window.
//
// Usage:
//
//	worlds play              - Play the level catalog
//	worlds list              - List levels and frontends
//	worlds check <dir>       - Validate level files
//	worlds simulate          - Play a scripted run without a display
//	worlds export <dir>      - Write the built-in levels as YAML files
//	worlds config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--config <path>       - Path to a worlds.yaml config file
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file for interactive play (default: ~/.worlds/worlds.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worlds/internal/config"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/levels"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "worlds",
	Short: "Worlds - a tiny platformer for your terminal",
	Long: `Worlds is a small side-view platform game. Run right, jump over
enemies and hazards, and touch the flag at the end of each level.

Available commands:
  play      - Play the level catalog
  list      - Show levels and display frontends
  check     - Validate a directory of level files
  simulate  - Run a scripted session without a display
  export    - Write the built-in levels as YAML files
  config    - Print the effective configuration

Examples:
  worlds play
  worlds play --levels ./levels --select
  worlds play --window
  worlds check ./levels --watch
  worlds simulate --script ./walk.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to worlds.yaml config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.worlds/worlds.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "worlds",
		Level:           level,
	}), nil
}

// openLogFile opens the play log, creating its directory.
// The alternate screen owns the terminal while playing, so logs go to a file.
func openLogFile() (*os.File, error) {
	path := expandPath(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.WorldsConfig, error) {
	cfg, err := config.LoadWorlds(expandPath(flagConfig))
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// loadCatalog returns the built-in catalog, or the levels under dir when set.
func loadCatalog(dir string, cfg config.WorldsConfig, logger *log.Logger) (*core.Catalog, error) {
	if dir == "" {
		return core.BuiltinCatalog(), nil
	}
	loader := levels.NewLoader(expandPath(dir), logger)
	loader.Enemy = worlds.EnemyDefaults(cfg)
	return loader.Catalog()
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
