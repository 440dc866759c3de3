package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/engine"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/levels"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

var flagListLevelsDir string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"levels"},
	Short:   "List modes and built-in mazes",
	Long: `Shows the registered game modes and the built-in maze campaign.
With --levels-dir, lists the maze files found in that directory instead.`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListLevelsDir, "levels-dir", "", "Directory of custom maze YAML files to list")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print modes
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()

	if flagListLevelsDir != "" {
		listCustomMazes(flagListLevelsDir)
		return
	}

	fmt.Println("Built-in mazes:")
	fmt.Println()
	fmt.Printf("  %-3s  %-12s  %-7s  %s\n", "#", "Name", "Size", "Tick")
	fmt.Printf("  %-3s  %-12s  %-7s  %s\n", "-", "----", "----", "----")
	for i, lvl := range engine.Levels {
		size := fmt.Sprintf("%dx%d", len(lvl.Layout[0]), len(lvl.Layout))
		fmt.Printf("  %-3d  %-12s  %-7s  %dms\n", i+1, lvl.Name, size, lvl.TickMs)
	}

	fmt.Println()
	fmt.Println("Run 'pacmaze play' to start playing.")
}

// listCustomMazes prints the maze files found in dir.
func listCustomMazes(dir string) {
	loader := levels.Loader{Root: dir}
	loaded, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", dir, err)
		os.Exit(1)
	}

	if len(loaded) == 0 {
		fmt.Printf("No maze files found in %s.\n", dir)
		return
	}

	fmt.Printf("Mazes in %s:\n", dir)
	fmt.Println()
	fmt.Printf("  %-16s  %-16s  %-7s  %s\n", "ID", "Name", "Tick", "File")
	fmt.Printf("  %-16s  %-16s  %-7s  %s\n", "--", "----", "----", "----")
	for _, lvl := range loaded {
		fmt.Printf("  %-16s  %-16s  %-4dms  %s\n", lvl.ID, lvl.Name, lvl.TickMs, lvl.FilePath)
	}

	fmt.Println()
	fmt.Printf("Run 'pacmaze play --levels-dir %s' to play them.\n", dir)
}
