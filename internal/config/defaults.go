package config

import (
	_ "embed"

	"github.com/vovakirdan/hue-recall/internal/palette"
)

//go:embed defaults/recall.yaml
var defaultRecallYAML []byte

// DefaultRecallConfig returns the default recall game configuration.
func DefaultRecallConfig() RecallConfig {
	return RecallConfig{
		Generation: palette.DefaultGenerationConfig(),
		Gameplay: RecallGameplay{
			MaxRounds:       5,
			RememberSeconds: 5,
			RecallSeconds:   5,
			RewardSeconds:   3,
			MaxRoundScore:   100,
			SpeedDecoys:     5,
			UnlockRatio:     0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				ExtraDecoys:         4,
				DeltaReduction:      10,
				MinDeltaLimit:       12,
				RecallTimeReduction: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "recall", "recall_speed":
		return defaultRecallYAML
	default:
		return nil
	}
}
