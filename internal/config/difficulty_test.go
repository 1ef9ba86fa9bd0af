package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultRecallConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		round int
		level float64
	}{
		{1, 0},
		{2, 0.25},
		{3, 0.5},
		{5, 1},
		{9, 1},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.round); math.Abs(got-tt.level) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.round, got, tt.level)
		}
	}

	dm.SetInitialLevel(0.5)
	if got := dm.Level(3); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(3) from 0.5 = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultRecallConfig().Difficulty
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)
	dm.SetEnabled(false)

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
	for _, round := range []int{1, 3, 5} {
		if got := dm.Level(round); got != 0.3 {
			t.Errorf("Level(%d) = %v, expected 0.3", round, got)
		}
	}

	cfg.Progression.Type = "none"
	if NewDifficultyManager(cfg).IsEnabled() {
		t.Error("progression type none should disable progression")
	}
}

func TestDifficultyGeneration(t *testing.T) {
	base := DefaultRecallConfig()
	dm := NewDifficultyManager(base.Difficulty)

	first := dm.Generation(base.Generation, 1)
	if first != base.Generation {
		t.Errorf("Generation(round 1) = %+v, expected base %+v", first, base.Generation)
	}

	last := dm.Generation(base.Generation, 5)
	if last.Count != base.Generation.Count+base.Difficulty.Scaling.ExtraDecoys {
		t.Errorf("Count at max level = %d, expected %d", last.Count, base.Generation.Count+base.Difficulty.Scaling.ExtraDecoys)
	}
	if last.DeltaLimit != 30 {
		t.Errorf("DeltaLimit at max level = %v, expected 30", last.DeltaLimit)
	}

	for round := 1; round <= 10; round++ {
		if err := dm.Generation(base.Generation, round).Validate(); err != nil {
			t.Errorf("Generation(%d) invalid: %v", round, err)
		}
	}
}

func TestDifficultyGenerationDeltaFloor(t *testing.T) {
	cfg := DefaultRecallConfig()
	cfg.Difficulty.Scaling.DeltaReduction = 100
	dm := NewDifficultyManager(cfg.Difficulty)

	got := dm.Generation(cfg.Generation, 5).DeltaLimit
	if got != cfg.Difficulty.Scaling.MinDeltaLimit {
		t.Errorf("DeltaLimit = %v, expected floor %v", got, cfg.Difficulty.Scaling.MinDeltaLimit)
	}

	// A floor above the base never widens the delta.
	cfg.Generation.DeltaLimit = 8
	got = dm.Generation(cfg.Generation, 5).DeltaLimit
	if got != 8 {
		t.Errorf("DeltaLimit with small base = %v, expected 8", got)
	}
}

func TestDifficultyGenerationKeepsDecoysApart(t *testing.T) {
	tests := []struct {
		name    string
		scaling ScalingConfig
	}{
		{"defaults", DefaultRecallConfig().Difficulty.Scaling},
		{"deep reduction", ScalingConfig{ExtraDecoys: 4, DeltaReduction: 30, MinDeltaLimit: 0}},
		{"low floor", ScalingConfig{ExtraDecoys: 8, DeltaReduction: 100, MinDeltaLimit: 6}},
		{"many decoys", ScalingConfig{ExtraDecoys: 40, DeltaReduction: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRecallConfig()
			cfg.Difficulty.Scaling = tt.scaling
			dm := NewDifficultyManager(cfg.Difficulty)

			for round := 1; round <= 5; round++ {
				gen := dm.Generation(cfg.Generation, round)
				perAxis := (gen.Count + 1) / 2
				if spacing := gen.DeltaLimit / float64(perAxis); spacing < minDecoySpacing {
					t.Errorf("round %d: %d decoys over %v are %v apart, expected at least %v",
						round, gen.Count, gen.DeltaLimit, spacing, minDecoySpacing)
				}
				if gen.Count < cfg.Generation.Count {
					t.Errorf("round %d: Count = %d, below base %d", round, gen.Count, cfg.Generation.Count)
				}
			}
		})
	}
}

func TestDifficultyTimersAndDecoys(t *testing.T) {
	cfg := DefaultRecallConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	if got := dm.RecallSeconds(5, 1); got != 5 {
		t.Errorf("RecallSeconds(round 1) = %v, expected 5", got)
	}
	if got := dm.RecallSeconds(5, 5); got != 3 {
		t.Errorf("RecallSeconds(round 5) = %v, expected 3", got)
	}
	if got := dm.RecallSeconds(1.5, 5); got != 1 {
		t.Errorf("RecallSeconds floor = %v, expected 1", got)
	}
	if got := dm.SpeedDecoys(5, 5); got != 9 {
		t.Errorf("SpeedDecoys(round 5) = %d, expected 9", got)
	}
}
