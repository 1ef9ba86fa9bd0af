package palette

import (
	"math/rand"
	"time"
)

// Source is the uniform random integer source the generators draw from.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed uses the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomInt returns a uniform integer in [min, maxExclusive).
func randomInt(src Source, min, maxExclusive int) int {
	return src.Intn(maxExclusive-min) + min
}

// uniformInt returns a uniform integer in [r.Min, r.Max].
func uniformInt(src Source, r Range) int {
	return randomInt(src, r.Min, r.Max+1)
}

// coinFlip returns true half of the time.
func coinFlip(src Source) bool {
	return randomInt(src, 0, 2) == 0
}
