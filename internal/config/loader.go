package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRecall loads the recall game configuration.
// Search order: customPath -> ~/.huerecall/configs/recall.yaml -> ./configs/recall.yaml -> embedded default
func LoadRecall(customPath string) (RecallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RecallConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRecall(data)
		if err != nil {
			return RecallConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("recall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRecall(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/recall.yaml"); err == nil {
		if cfg, err := parseRecall(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRecall(defaultRecallYAML)
	if err != nil {
		return DefaultRecallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRecall decodes YAML over the defaults so omitted keys keep their
// default values, then validates the result.
func parseRecall(data []byte) (RecallConfig, error) {
	cfg := DefaultRecallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RecallConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RecallConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".huerecall", "configs", filename)
}

// ApplyRecallPreset modifies the config based on a difficulty preset.
func ApplyRecallPreset(cfg *RecallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust timing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.RememberSeconds += 2
		cfg.Gameplay.RecallSeconds += 2
	case DifficultyHard:
		cfg.Gameplay.RememberSeconds = max(1, cfg.Gameplay.RememberSeconds-2)
	}
}

// ApplyDifficultyNumber sets the initial level from a difficulty number (1..MaxDifficulty).
func ApplyDifficultyNumber(cfg *RecallConfig, n int) {
	cfg.Difficulty.InitialLevel = LevelForDifficulty(n)
}
