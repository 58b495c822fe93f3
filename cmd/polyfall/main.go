// polyfall is a terminal falling-block game built on polyominoes of
// configurable size (4-9 cells).
//
// Usage:
//
//	polyfall list              - List available variants
//	polyfall play <variant>    - Play a variant
//	polyfall menu              - Start the interactive picker menu
//	polyfall serve             - Start SSH server for remote play
//	polyfall scores <variant>  - Show best runs for a variant
//	polyfall shapes <size>     - Show the piece catalog for a size
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.polyfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/polyfall/internal/games/polyfall"
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
	Use:   "polyfall",
	Short: "Polyfall - falling polyominoes in your terminal",
	Long: `Polyfall is a terminal falling-block game where the pieces are
polyominoes of any size from 4 to 9 cells.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs
  shapes   - Inspect the generated piece catalog
  config   - Print or install the default config

Examples:
  polyfall list
  polyfall play polyfall_penta
  polyfall menu
  polyfall serve --ssh :2222
  polyfall scores polyfall
  polyfall shapes 6`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.polyfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}
