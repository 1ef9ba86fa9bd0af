package palette

import (
	"fmt"

	"github.com/vovakirdan/hue-recall/internal/colorspace"
)

// offsetColor is a decoy before conversion to RGB.
type offsetColor struct {
	lab     colorspace.Lab
	nominal float64
}

// offsetLabs builds count colors stepping away from target along one axis,
// reaching deltaLimit at the last one. L and the other axis stay fixed.
//
// The direction is forced when one extreme would leave ab and chosen by coin
// flip otherwise.
func offsetLabs(target colorspace.Lab, deltaLimit float64, axis Axis, count int, ab Range, src Source) ([]offsetColor, error) {
	if count <= 0 {
		return nil, nil
	}

	base := axis.component(target)
	forwardOut := !ab.Contains(base + deltaLimit)
	backwardOut := !ab.Contains(base - deltaLimit)

	var forward bool
	switch {
	case forwardOut && backwardOut:
		return nil, fmt.Errorf("%w: %s=%g, delta %g, range [%d, %d]",
			ErrGamutTooNarrow, axis, base, deltaLimit, ab.Min, ab.Max)
	case forwardOut:
		forward = false
	case backwardOut:
		forward = true
	default:
		forward = coinFlip(src)
	}

	sign := 1.0
	if !forward {
		sign = -1
	}

	// Both extremes are inside ab, so every intermediate step is too. The
	// last offset is computed as exactly deltaLimit.
	out := make([]offsetColor, count)
	for i := range out {
		offset := deltaLimit * float64(i+1) / float64(count)
		out[i] = offsetColor{
			lab:     axis.with(target, base+sign*offset),
			nominal: offset,
		}
	}
	return out, nil
}

// OffsetSet returns count displayable decoys offset from target along axis.
// Each candidate's DeltaE is its displayed distance from the displayed target.
func OffsetSet(target colorspace.Lab, deltaLimit float64, axis Axis, count int, ab Range, src Source) ([]Candidate, error) {
	offsets, err := offsetLabs(target, deltaLimit, axis, count, ab, src)
	if err != nil {
		return nil, err
	}

	shown := colorspace.RGBToLab(colorspace.LabToRGB(target))
	out := make([]Candidate, len(offsets))
	for i, o := range offsets {
		out[i] = displayedDecoy(shown, o)
	}
	return out, nil
}

// displayedDecoy converts o to RGB and tags it with its CIE76 distance from
// shown, the target as it appears on screen.
func displayedDecoy(shown colorspace.Lab, o offsetColor) Candidate {
	rgb := colorspace.LabToRGB(o.lab)
	return newCandidate(rgb, colorspace.DeltaE(shown, colorspace.RGBToLab(rgb)), o.nominal, false)
}

// splitCount divides count decoys between the a and b axes. An odd decoy goes
// to either axis by coin flip.
func splitCount(count int, src Source) (aCount, bCount int) {
	aCount, bCount = count/2, count/2
	if count%2 != 0 {
		if coinFlip(src) {
			aCount++
		} else {
			bCount++
		}
	}
	return aCount, bCount
}

// buildOffsets returns the a-axis decoys followed by the b-axis decoys.
func buildOffsets(target colorspace.Lab, cfg GenerationConfig, src Source) ([]offsetColor, error) {
	aCount, bCount := splitCount(cfg.Count, src)

	aRun, err := offsetLabs(target, cfg.DeltaLimit, AxisA, aCount, cfg.ABRange, src)
	if err != nil {
		return nil, err
	}
	bRun, err := offsetLabs(target, cfg.DeltaLimit, AxisB, bCount, cfg.ABRange, src)
	if err != nil {
		return nil, err
	}

	out := make([]offsetColor, 0, len(aRun)+len(bRun))
	out = append(out, aRun...)
	return append(out, bRun...), nil
}

// BuildCandidates returns cfg.Count decoys around target followed by the
// target itself as the last element, without checking fairness. Callers
// shuffle for display.
func BuildCandidates(target colorspace.Lab, cfg GenerationConfig, src Source) ([]Candidate, error) {
	offsets, err := buildOffsets(target, cfg, src)
	if err != nil {
		return nil, err
	}

	out, _ := scoreOffsets(target, offsets)
	return out, nil
}
