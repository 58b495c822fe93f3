package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyfall/internal/registry"
	"github.com/vovakirdan/polyfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show best runs for a variant",
	Long: `Display the top 10 runs for the specified variant, or an overview
of all variants when no variant is given.

Examples:
  polyfall scores
  polyfall scores polyfall
  polyfall scores polyfall_penta`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresOverview()
		return
	}
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'polyfall list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top runs
	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'polyfall play %s' to set the first record!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Level", "Lines", "Pieces", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-7d  %s\n",
			i+1, entry.Score, entry.Level, entry.Lines, entry.Pieces, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil && highScore > 0 {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runScoresOverview prints aggregate stats for every variant that has runs.
func runScoresOverview() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Overview")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-10s  %-10s  %s\n", "Variant", "Games", "Best", "Avg", "Lines")
	fmt.Printf("  %-16s  %-6s  %-10s  %-10s  %s\n", "-------", "-----", "----", "---", "-----")

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-10d  %-10.0f  %d\n",
			g.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
	}
}
