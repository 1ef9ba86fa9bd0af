// Package config provides YAML-based game configuration loading and
// difficulty management for Hue Recall.
package config

import (
	"fmt"

	"github.com/vovakirdan/hue-recall/internal/palette"
)

// MaxDifficulty is the highest difficulty number a player can unlock.
const MaxDifficulty = 5

// RecallConfig contains all configuration for the recall game.
type RecallConfig struct {
	Generation palette.GenerationConfig `yaml:"generation"`
	Gameplay   RecallGameplay           `yaml:"gameplay"`
	Difficulty DifficultyConfig         `yaml:"difficulty"`
}

// RecallGameplay defines round structure and timing.
type RecallGameplay struct {
	MaxRounds       int     `yaml:"max_rounds"`
	RememberSeconds float64 `yaml:"remember_seconds"`
	RecallSeconds   float64 `yaml:"recall_seconds"`
	RewardSeconds   float64 `yaml:"reward_seconds"`
	MaxRoundScore   int     `yaml:"max_round_score"`
	SpeedDecoys     int     `yaml:"speed_decoys"`
	UnlockRatio     float64 `yaml:"unlock_ratio"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // Rounds after the first at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at the maximum level.
type ScalingConfig struct {
	ExtraDecoys         int     `yaml:"extra_decoys"`          // Decoys added at max difficulty
	DeltaReduction      float64 `yaml:"delta_reduction"`       // Delta limit removed at max difficulty
	MinDeltaLimit       float64 `yaml:"min_delta_limit"`       // Delta limit never drops below this
	RecallTimeReduction float64 `yaml:"recall_time_reduction"` // Seconds removed from the recall timer
}

// Validate checks that the configuration can drive a game.
func (c RecallConfig) Validate() error {
	if err := c.Generation.Validate(); err != nil {
		return err
	}
	switch {
	case c.Gameplay.MaxRounds < 1:
		return fmt.Errorf("config: max_rounds must be at least 1, got %d", c.Gameplay.MaxRounds)
	case c.Gameplay.RememberSeconds <= 0 || c.Gameplay.RecallSeconds <= 0:
		return fmt.Errorf("config: remember_seconds and recall_seconds must be positive")
	case c.Gameplay.MaxRoundScore < 1:
		return fmt.Errorf("config: max_round_score must be positive, got %d", c.Gameplay.MaxRoundScore)
	case c.Gameplay.SpeedDecoys < 1:
		return fmt.Errorf("config: speed_decoys must be at least 1, got %d", c.Gameplay.SpeedDecoys)
	case c.Difficulty.Scaling.MinDeltaLimit < 0 || c.Difficulty.Scaling.ExtraDecoys < 0 ||
		c.Difficulty.Scaling.DeltaReduction < 0:
		return fmt.Errorf("config: difficulty scaling must not be negative")
	case c.Generation.Count > maxDecoys(c.Generation.DeltaLimit):
		return fmt.Errorf("config: %d decoys do not fit in delta_limit %g (at most %d)",
			c.Generation.Count, c.Generation.DeltaLimit, maxDecoys(c.Generation.DeltaLimit))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// LevelForDifficulty maps a difficulty number (1..MaxDifficulty) to an initial level.
func LevelForDifficulty(n int) float64 {
	if n <= 1 {
		return 0
	}
	if n >= MaxDifficulty {
		return 1
	}
	return float64(n-1) / float64(MaxDifficulty-1)
}

// DifficultyForLevel maps an initial level back to the nearest difficulty number.
func DifficultyForLevel(level float64) int {
	level = clampF(level, 0, 1)
	return 1 + int(level*float64(MaxDifficulty-1)+0.5)
}
