// Package palette generates the colors shown in a recall round: a target
// color plus decoys that are either perceptually similar (accuracy mode) or
// unrelated random colors (speed mode).
//
// All generation is synchronous and pure apart from the random source, which
// is passed in by the caller. Use one source per goroutine.
package palette

import (
	"fmt"

	"github.com/vovakirdan/hue-recall/internal/colorspace"
)

const (
	// PerceptibilityFloor is the smallest CIE76 distance a decoy may have from
	// the target in a fair set.
	PerceptibilityFloor = 3.0

	// MaxFairAttempts bounds how many sets GenerateFairSet builds before it
	// settles for the last one.
	MaxFairAttempts = 10

	// MaxUniqueResamples bounds resampling of a duplicate unrelated color.
	MaxUniqueResamples = 9999

	// UnrelatedDeltaE marks decoys that have no perceptual relation to the target.
	UnrelatedDeltaE = -1.0
)

// Axis selects the Lab chroma axis a decoy run varies along.
type Axis int

const (
	AxisA Axis = iota
	AxisB
)

// String returns "a" or "b".
func (a Axis) String() string {
	switch a {
	case AxisA:
		return "a"
	case AxisB:
		return "b"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// component returns the value of this axis in c.
func (a Axis) component(c colorspace.Lab) float64 {
	if a == AxisA {
		return c.A
	}
	return c.B
}

// with returns c with this axis set to v.
func (a Axis) with(c colorspace.Lab, v float64) colorspace.Lab {
	if a == AxisA {
		c.A = v
	} else {
		c.B = v
	}
	return c
}

// Candidate is one selectable color in a round.
type Candidate struct {
	Hex string         `json:"hex"`
	RGB colorspace.RGB `json:"-"`

	// DeltaE is the CIE76 distance between this color and the target as
	// displayed: 0 for the target itself, UnrelatedDeltaE in speed mode.
	DeltaE float64 `json:"delta_e"`

	// Nominal is the offset the generator aimed for along its axis.
	Nominal float64 `json:"nominal"`

	Correct bool `json:"correct"`
}

// Set is a generated round: the target color and every candidate, target included.
type Set struct {
	Target colorspace.Lab `json:"target"`
	Colors []Candidate    `json:"colors"`

	// Attempts is the number of sets built before this one was accepted.
	Attempts int `json:"attempts"`

	// Fair is false when the attempt cap was reached and the last set was
	// accepted without passing the fairness check.
	Fair bool `json:"fair"`
}

// TargetIndex returns the index of the correct candidate, or -1.
func (s Set) TargetIndex() int {
	for i, c := range s.Colors {
		if c.Correct {
			return i
		}
	}
	return -1
}

// Decoys returns the candidates that are not the target.
func (s Set) Decoys() []Candidate {
	out := make([]Candidate, 0, len(s.Colors))
	for _, c := range s.Colors {
		if !c.Correct {
			out = append(out, c)
		}
	}
	return out
}

func newCandidate(rgb colorspace.RGB, deltaE, nominal float64, correct bool) Candidate {
	return Candidate{
		Hex:     rgb.Hex(),
		RGB:     rgb,
		DeltaE:  deltaE,
		Nominal: nominal,
		Correct: correct,
	}
}

