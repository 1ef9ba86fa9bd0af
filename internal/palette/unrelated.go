package palette

import (
	"fmt"

	"github.com/vovakirdan/hue-recall/internal/colorspace"
)

// GenerateUnrelatedSet returns count+1 random sRGB colors. The first is the
// target; the rest are decoys with DeltaE = UnrelatedDeltaE.
//
// A decoy that repeats an earlier color is resampled up to MaxUniqueResamples
// times before the duplicate is kept.
func GenerateUnrelatedSet(count int, src Source) (Set, error) {
	if count < 1 {
		return Set{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, count)
	}

	target := randomRGB(src)
	seen := map[colorspace.RGB]struct{}{target: {}}

	colors := make([]Candidate, 0, count+1)
	colors = append(colors, newCandidate(target, 0, 0, true))

	for range count {
		c := randomRGB(src)
		for tries := 0; tries < MaxUniqueResamples; tries++ {
			if _, dup := seen[c]; !dup {
				break
			}
			c = randomRGB(src)
		}
		seen[c] = struct{}{}
		colors = append(colors, newCandidate(c, UnrelatedDeltaE, UnrelatedDeltaE, false))
	}

	return Set{
		Target:   colorspace.RGBToLab(target),
		Colors:   colors,
		Attempts: 1,
		Fair:     true,
	}, nil
}

func randomRGB(src Source) colorspace.RGB {
	return colorspace.RGB{
		R: randomInt(src, 0, 256),
		G: randomInt(src, 0, 256),
		B: randomInt(src, 0, 256),
	}
}
