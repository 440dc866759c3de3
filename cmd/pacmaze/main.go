// pacmaze is a terminal maze-chase game played directly in the terminal.
//
// Usage:
//
//	pacmaze play [mode]      - Play (campaign or endless)
//	pacmaze menu             - Start the interactive mode picker
//	pacmaze list             - List modes and built-in mazes
//	pacmaze serve            - Start SSH server for remote play
//	pacmaze scores [mode]    - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pacmaze/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/pacmaze/internal/games/pacmaze"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacmaze",
	Short: "Pac-Maze - A terminal maze-chase game",
	Long: `Pac-Maze is a terminal game where you steer through a maze eating
pellets while ghosts roam the corridors. Grab a power pellet to turn
the tables, or fire a shot to send a ghost back to its den.

Available commands:
  list     - Show modes and built-in mazes
  play     - Play directly (campaign or endless)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  pacmaze list
  pacmaze play
  pacmaze play pacmaze_endless
  pacmaze menu
  pacmaze serve --ssh :2222
  pacmaze scores pacmaze`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacmaze/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
