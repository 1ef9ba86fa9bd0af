package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-recall/internal/platform/tui"
	"github.com/vovakirdan/hue-recall/internal/registry"
	"github.com/vovakirdan/hue-recall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Pick a mode and one of your unlocked difficulty levels. After a game ends,
press B to return to the menu. Finishing with at least 80% of the maximum
score unlocks the next level.

Controls:
  Up/Down/j/k     - Choose a mode
  Left/Right/h/l  - Choose a level
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  huerecall menu
  huerecall menu --fps 60
  huerecall menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	cfg := terminalConfig()
	sessionID := storage.NewSessionID()
	logger.Debug("menu session", "session", sessionID)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		registry.Configure(game, flagConfig, "", menuResult.Difficulty)

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, runErr := tui.Run(game, store, cfg, sessionID)
		if runErr != nil {
			logger.Error("game ended with error", "game", menuResult.GameID, "error", runErr)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
