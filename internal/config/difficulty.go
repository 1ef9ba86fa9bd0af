package config

import (
	"math"

	"github.com/vovakirdan/hue-recall/internal/palette"
)

// DifficultyManager calculates per-round generation parameters from the
// difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a 1-based round number.
func (d *DifficultyManager) Level(round int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "round" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(round-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Generation returns the similar-color parameters for a round. Decoys are
// added and the delta limit shrinks as the level rises.
func (d *DifficultyManager) Generation(base palette.GenerationConfig, round int) palette.GenerationConfig {
	level := d.Level(round)

	out := base
	out.Count = base.Count + int(math.Round(level*float64(d.cfg.Scaling.ExtraDecoys)))

	delta := base.DeltaLimit - level*d.cfg.Scaling.DeltaReduction
	if floor := d.cfg.Scaling.MinDeltaLimit; floor > 0 && delta < floor {
		delta = math.Min(floor, base.DeltaLimit)
	}
	if delta > 0 {
		out.DeltaLimit = delta
	}

	// Keep decoys spaced apart: shrink the delta only as far as the base
	// count allows, then cap the extra decoys.
	if minDelta := float64((base.Count+1)/2) * minDecoySpacing; out.DeltaLimit < minDelta {
		out.DeltaLimit = math.Min(minDelta, base.DeltaLimit)
	}
	if limit := maxDecoys(out.DeltaLimit); out.Count > limit {
		out.Count = max(base.Count, limit)
	}
	return out
}

// minDecoySpacing is the smallest distance between neighbouring decoys on one
// axis. One unit above the perceptibility floor absorbs RGB rounding.
const minDecoySpacing = palette.PerceptibilityFloor + 1

// maxDecoys returns how many decoys fit within deltaLimit at minDecoySpacing.
// Decoys split between the a and b axes.
func maxDecoys(deltaLimit float64) int {
	return 2 * int(deltaLimit/minDecoySpacing)
}

// SpeedDecoys returns the unrelated decoy count for a round.
func (d *DifficultyManager) SpeedDecoys(base, round int) int {
	return base + int(math.Round(d.Level(round)*float64(d.cfg.Scaling.ExtraDecoys)))
}

// RecallSeconds returns the recall timer for a round, never below one second.
func (d *DifficultyManager) RecallSeconds(base float64, round int) float64 {
	return math.Max(1, base-d.Level(round)*d.cfg.Scaling.RecallTimeReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
