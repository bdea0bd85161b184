package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worlds/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels and display frontends",
	Long:  `Shows the levels of the catalog in play order and the registered frontends.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
}

func runList(_ *cobra.Command, _ []string) error {
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

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for i := range cat.Len() {
		if id := cat.Level(i).ID; len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s %-*s  %-8s %-7s %s\n", "#", maxIDLen, "ID", "Theme", "Enemies", "Name")
	fmt.Printf("  %-3s %-*s  %-8s %-7s %s\n", "-", maxIDLen, "--", "-----", "-------", "----")
	for i := range cat.Len() {
		lvl := cat.Level(i)
		name := lvl.Name
		if lvl.Hazard != nil {
			name += fmt.Sprintf(" [%s]", lvl.Hazard.Kind)
		}
		fmt.Printf("  %-3d %-*s  %-8s %-7d %s\n", i+1, maxIDLen, lvl.ID, lvl.Theme, len(lvl.Enemies), name)
	}

	fmt.Println()
	fmt.Println("Frontends:")
	fmt.Println()
	for _, f := range registry.List() {
		fmt.Printf("  %-9s %s\n", f.Name, f.Description)
	}

	fmt.Println()
	fmt.Println("Run 'worlds play --start <#>' to start from a level.")
	return nil
}
