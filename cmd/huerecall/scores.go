package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-recall/internal/registry"
	"github.com/vovakirdan/hue-recall/internal/storage"
)

var (
	flagScoresLevel int
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, or a summary of
every game that has been played when no game is given.

Examples:
  huerecall scores
  huerecall scores recall
  huerecall scores recall --level 2
  huerecall scores recall_speed --limit 20
  huerecall scores recall --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Only show this difficulty (0 = all)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'huerecall list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLevel, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	heading := fmt.Sprintf("High Scores - %s", title)
	if flagScoresLevel > 0 {
		heading += fmt.Sprintf(" (level %d)", flagScoresLevel)
	}
	fmt.Println(heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'huerecall play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Unlocked level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.MaxDifficulty)
	}
}

func runScoresSummary() {
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
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %-5s  %-5s  %-5s  %s\n", "Game", "Best", "Games", "Level", "Last played")
	fmt.Printf("  %-14s  %-5s  %-5s  %-5s  %s\n", "----", "----", "-----", "-----", "-----------")
	for _, info := range registry.List() {
		stats, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  %-5d  %-5d  %-5d  %s\n", info.ID, stats.HighScore, stats.GamesCount,
			stats.MaxDifficulty, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
