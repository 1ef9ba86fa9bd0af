package palette

import "github.com/vovakirdan/hue-recall/internal/colorspace"

// LabToHex returns the displayed "#rrggbb" string for a Lab color.
func LabToHex(c colorspace.Lab) string {
	return colorspace.LabToHex(c)
}

// PerceptualDistance returns the CIE76 distance between two Lab colors.
func PerceptualDistance(a, b colorspace.Lab) float64 {
	return colorspace.DeltaE(a, b)
}

// GenerateFairSimilarColorSet builds an accuracy-mode round.
func GenerateFairSimilarColorSet(count int, deltaLimit float64, lRange, abRange Range, src Source) (Set, error) {
	return GenerateFairSet(GenerationConfig{
		Count:      count,
		DeltaLimit: deltaLimit,
		LRange:     lRange,
		ABRange:    abRange,
	}, src)
}

// GenerateUnrelatedColorSet builds a speed-mode round.
func GenerateUnrelatedColorSet(count int, src Source) (Set, error) {
	return GenerateUnrelatedSet(count, src)
}

// Shuffle reorders candidates in place with a Fisher-Yates shuffle.
func Shuffle(colors []Candidate, src Source) {
	for i := len(colors) - 1; i > 0; i-- {
		j := randomInt(src, 0, i+1)
		colors[i], colors[j] = colors[j], colors[i]
	}
}
