package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/engine"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/levels"
	"github.com/vovakirdan/pacmaze/internal/platform/tui"
	"github.com/vovakirdan/pacmaze/internal/registry"
	"github.com/vovakirdan/pacmaze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStartLevel int
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Pac-Maze",
	Long: `Start playing. With no argument the campaign mode selector is shown.
Pass a mode id (pacmaze, pacmaze_endless) to skip the selector.

Controls:
  W/A/S/D    - Steer (arrow keys also work)
  Space/F    - Fire a shot
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  pacmaze play
  pacmaze play pacmaze_endless
  pacmaze play --difficulty hard
  pacmaze play --start-level 2
  pacmaze play --levels-dir ./my-mazes
  pacmaze play --config ./my-pacmaze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Starting maze (1-indexed, campaign only)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom maze YAML files")
}

// loadCustomLevels loads all maze files under dir and installs them as
// the active campaign set.
func loadCustomLevels(dir string) error {
	loader := levels.Loader{Root: dir}
	loaded, err := loader.LoadAll()
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		return fmt.Errorf("no maze files found in %s", dir)
	}

	defs := make([]engine.Level, len(loaded))
	for i, l := range loaded {
		defs[i] = l.Definition()
	}
	pacmaze.SetCustomLevels(defs)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pacmaze"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacmaze list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	pacmaze.SetConfigPath(flagConfig)
	pacmaze.SetDifficultyPreset(flagDifficulty)

	if flagLevelsDir != "" {
		if err := loadCustomLevels(flagLevelsDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mazes: %v\n", err)
			os.Exit(1)
		}
	}

	if flagStartLevel > 0 {
		pacmaze.SetStartLevel(flagStartLevel)
	} else if gameID == "pacmaze" && len(args) == 0 {
		// Show the mode/maze selector when nothing was pinned down on
		// the command line
		selection, updatedCfg, selErr := tui.RunPacmazeModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		if selection.Mode == tui.PacmazeModeEndless {
			gameID = "pacmaze_endless"
		}
		if selection.Level > 0 {
			pacmaze.SetStartLevel(selection.Level)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
