package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/polyfall/internal/core"
	"github.com/vovakirdan/polyfall/internal/games/polyfall"
	"github.com/vovakirdan/polyfall/internal/platform/tui"
	"github.com/vovakirdan/polyfall/internal/registry"
	"github.com/vovakirdan/polyfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagLevel      int
	flagCustom     bool
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  A/D, Left/Right  - Move piece
  W/Up/X           - Rotate clockwise
  Z                - Rotate counter-clockwise
  S/Down           - Soft drop
  Space            - Hard drop
  C                - Hold piece
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Level 1, generous lock delay
  normal - Level 1, standard lock delay
  hard   - Level 5, short lock delay

Examples:
  polyfall play polyfall
  polyfall play polyfall_penta --difficulty hard
  polyfall play polyfall --size 7 --level 5
  polyfall play polyfall --custom
  polyfall play polyfall --config ./my-rules.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Polyomino size override (4-9, 0 = variant default)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = config default)")
	playCmd.Flags().BoolVar(&flagCustom, "custom", false, "Show the interactive custom game selector")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'polyfall list' to see available variants.")
		os.Exit(1)
	}

	// Get terminal size early for the selector
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

	// Apply flags before creation
	polyfall.SetConfigPath(flagConfig)
	polyfall.SetDifficultyPreset(flagDifficulty)
	if flagSize > 0 {
		polyfall.SetPieceSize(flagSize)
	}
	if flagLevel > 0 {
		polyfall.SetStartLevel(flagLevel)
	}

	if flagCustom {
		selection, updatedCfg, selErr := tui.RunCustomGameSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = tui.ApplyCustomSelection(*selection)
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
