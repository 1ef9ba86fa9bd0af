package palette

import (
	"math"

	"github.com/vovakirdan/hue-recall/internal/colorspace"
)

// GenerateFairSet picks a random target within cfg's bounds and surrounds it
// with cfg.Count similar decoys.
//
// A set is fair when every decoy's Lab distance floors to the same integer as
// its nominal offset and the displayed decoy is at least PerceptibilityFloor
// from the displayed target. Unfair
// sets are rebuilt from a fresh target up to MaxFairAttempts times, after
// which the last one is returned with Fair=false. The only error is an
// invalid cfg.
func GenerateFairSet(cfg GenerationConfig, src Source) (Set, error) {
	if err := cfg.Validate(); err != nil {
		return Set{}, err
	}

	var set Set
	for attempt := 1; attempt <= MaxFairAttempts; attempt++ {
		target := randomTarget(cfg, src)

		offsets, err := buildOffsets(target, cfg, src)
		if err != nil {
			// Unreachable for a validated config.
			return Set{}, err
		}

		colors, fair := scoreOffsets(target, offsets)
		set = Set{
			Target:   target,
			Colors:   colors,
			Attempts: attempt,
			Fair:     fair,
		}
		if fair {
			break
		}
	}
	return set, nil
}

// randomTarget draws L, a and b uniformly from the inclusive config ranges.
func randomTarget(cfg GenerationConfig, src Source) colorspace.Lab {
	return colorspace.Lab{
		L: float64(uniformInt(src, cfg.LRange)),
		A: float64(uniformInt(src, cfg.ABRange)),
		B: float64(uniformInt(src, cfg.ABRange)),
	}
}

// scoreOffsets converts offsets to displayed candidates, appends the target
// and reports whether the set passed the fairness check.
//
// Each decoy's DeltaE is measured between the colors the player sees, after
// both went through RGB rounding and gamut clamping.
func scoreOffsets(target colorspace.Lab, offsets []offsetColor) ([]Candidate, bool) {
	targetRGB := colorspace.LabToRGB(target)
	shown := colorspace.RGBToLab(targetRGB)

	fair := true
	colors := make([]Candidate, 0, len(offsets)+1)
	for _, o := range offsets {
		c := displayedDecoy(shown, o)
		if !isFairDecoy(colorspace.DeltaE(target, o.lab), o.nominal, c.DeltaE) || c.RGB == targetRGB {
			fair = false
		}
		colors = append(colors, c)
	}
	return append(colors, newCandidate(targetRGB, 0, 0, true)), fair
}

// isFairDecoy compares floored distances rather than exact values so a decoy
// whose Lab offset drifted across an integer boundary is rejected. The
// displayed distance must clear PerceptibilityFloor on its own.
func isFairDecoy(actual, nominal, displayed float64) bool {
	return math.Floor(actual) == math.Floor(nominal) &&
		actual >= PerceptibilityFloor &&
		displayed >= PerceptibilityFloor
}
