// huerecall is a terminal color memory game: remember a color, then find it
// again among decoys.
//
// Usage:
//
//	huerecall list              - List available games
//	huerecall play <game>       - Play a game
//	huerecall menu              - Start menu to pick games interactively
//	huerecall serve             - Start SSH server for remote play
//	huerecall scores <game>     - Show high scores for a game
//	huerecall generate          - Print one round of colors
//	huerecall convert           - Convert between Lab and hex
//	huerecall distance <a> <b>  - CIE76 distance between two hex colors
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.huerecall/scores.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/hue-recall/internal/games/recall"
	"github.com/vovakirdan/hue-recall/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "huerecall",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huerecall",
	Short: "Hue Recall - a color memory game for your terminal",
	Long: `Hue Recall shows you a color for a few seconds, then asks you to find it
again among decoys.

Modes:
  recall        - Accuracy: decoys are perceptually close, closer picks score more
  recall_speed  - Speed: decoys are random, faster correct picks score more

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  generate  - Print one round of colors
  convert   - Convert between Lab and hex
  distance  - Perceptual distance between two colors

Examples:
  huerecall list
  huerecall play recall
  huerecall menu
  huerecall serve --ssh :2222
  huerecall scores recall --level 2
  huerecall generate --count 6 --delta 24 --json`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(distanceCmd)
}
