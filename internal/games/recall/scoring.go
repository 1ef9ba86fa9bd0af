package recall

import (
	"math"

	"github.com/vovakirdan/hue-recall/internal/palette"
)

// AccuracyScore scores a pick by its distance from the target: the full
// maxScore for the target, falling linearly to zero at deltaLimit.
func AccuracyScore(picked palette.Candidate, deltaLimit float64, maxScore int) int {
	if picked.Correct || picked.DeltaE == 0 {
		return maxScore
	}
	if deltaLimit <= 0 || picked.DeltaE < 0 {
		return 0
	}
	share := math.Max(0, deltaLimit-picked.DeltaE) / deltaLimit
	return int(math.Round(float64(maxScore) * share))
}

// SpeedScore scores a pick by the share of recall time left. Wrong picks
// score zero.
func SpeedScore(picked palette.Candidate, ticksLeft, totalTicks, maxScore int) int {
	if !picked.Correct || totalTicks <= 0 || ticksLeft <= 0 {
		return 0
	}
	if ticksLeft > totalTicks {
		ticksLeft = totalTicks
	}
	return int(math.Ceil(float64(maxScore) * float64(ticksLeft) / float64(totalTicks)))
}
