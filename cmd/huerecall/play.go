package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hue-recall/internal/core"
	"github.com/vovakirdan/hue-recall/internal/platform/tui"
	"github.com/vovakirdan/hue-recall/internal/registry"
	"github.com/vovakirdan/hue-recall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/HJKL  - Move the cursor over the swatches
  Enter/Space       - Pick a color, or skip a countdown
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty with extra time, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with less time to memorize
  fixed  - No progression, stays at config's initial level

--level picks an unlocked difficulty number (1-5) and overrides the preset.

Examples:
  huerecall play recall
  huerecall play recall_speed --difficulty easy
  huerecall play recall --level 3
  huerecall play recall --config ./my-recall.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Difficulty number (must be unlocked)")
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	level := flagLevel
	if level > 0 && store != nil {
		unlocked, unlockErr := store.MaxDifficulty(gameID)
		if unlockErr == nil && level > unlocked {
			logger.Warn("difficulty not unlocked yet", "level", level, "unlocked", unlocked)
			level = unlocked
		}
	}
	registry.Configure(game, flagConfig, flagDifficulty, level)

	_, runErr := tui.Run(game, store, terminalConfig(), storage.NewSessionID())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
