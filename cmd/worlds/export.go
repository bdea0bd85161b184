package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/levels"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the built-in levels as YAML files",
	Long: `Write each built-in level to <dir>/<id>.yaml. The files are a
starting point for custom level packs loaded with 'worlds play --levels'.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(_ *cobra.Command, args []string) error {
	paths, err := levels.Export(core.BuiltinCatalog(), expandPath(args[0]))
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
