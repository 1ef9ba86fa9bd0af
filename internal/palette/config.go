package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for generation parameters the engine cannot honor.
	ErrInvalidConfig = errors.New("palette: invalid generation config")

	// ErrGamutTooNarrow is returned when an offset run would leave the a/b
	// range in both directions.
	ErrGamutTooNarrow = errors.New("palette: delta limit exceeds a/b range in both directions")
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

// Span returns Max - Min.
func (r Range) Span() int {
	return r.Max - r.Min
}

// GenerationConfig holds the knobs for building a similar-color set.
type GenerationConfig struct {
	Count      int     `yaml:"count" json:"count"`
	DeltaLimit float64 `yaml:"delta_limit" json:"delta_limit"`
	LRange     Range   `yaml:"l_range" json:"l_range"`
	ABRange    Range   `yaml:"ab_range" json:"ab_range"`
}

// DefaultGenerationConfig returns the parameters the game ships with.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Count:      4,
		DeltaLimit: 40,
		LRange:     Range{Min: 40, Max: 80},
		ABRange:    Range{Min: -80, Max: 80},
	}
}

// Validate rejects configurations with undefined behavior.
//
// DeltaLimit may not exceed half the a/b span: past that, a target near the
// middle of the range has no legal direction to push decoys in.
func (c GenerationConfig) Validate() error {
	switch {
	case c.Count < 1:
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, c.Count)
	case c.DeltaLimit <= 0:
		return fmt.Errorf("%w: delta limit must be positive, got %g", ErrInvalidConfig, c.DeltaLimit)
	case c.LRange.Min > c.LRange.Max:
		return fmt.Errorf("%w: inverted L range [%d, %d]", ErrInvalidConfig, c.LRange.Min, c.LRange.Max)
	case c.ABRange.Min > c.ABRange.Max:
		return fmt.Errorf("%w: inverted a/b range [%d, %d]", ErrInvalidConfig, c.ABRange.Min, c.ABRange.Max)
	case c.DeltaLimit > float64(c.ABRange.Span())/2:
		return fmt.Errorf("%w: delta limit %g exceeds half of a/b range [%d, %d]",
			ErrInvalidConfig, c.DeltaLimit, c.ABRange.Min, c.ABRange.Max)
	}
	return nil
}
