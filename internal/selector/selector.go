// Package selector picks a uniformly random entry from a site list and
// computes the forward wheel rotation that lands the chosen segment under the
// pointer.
package selector

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyList is returned by Pick when there is nothing to choose from.
var ErrEmptyList = errors.New("site list is empty")

// Result is the outcome of a single pick.
type Result struct {
	Index int
	Raw   string
}

// Source provides randomness. It needs no cryptographic strength.
type Source interface {
	// IntN returns a uniformly distributed int in [0, n). n > 0.
	IntN(n int) int
	// Float64 returns a uniformly distributed float in [0, 1).
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the math/rand/v2 global generator.
func DefaultSource() Source {
	return globalSource{}
}

// Selector picks entries and landing offsets from a Source.
type Selector struct {
	src Source
}

// New returns a Selector backed by src, or by DefaultSource when src is nil.
func New(src Source) *Selector {
	if src == nil {
		src = DefaultSource()
	}
	return &Selector{src: src}
}

// Pick chooses an index with probability 1/len(list).
func (s *Selector) Pick(list []string) (Result, error) {
	if len(list) == 0 {
		return Result{}, ErrEmptyList
	}
	i := s.src.IntN(len(list))
	return Result{Index: i, Raw: list[i]}, nil
}

// Offset returns a landing offset in degrees within the middle 80% of a
// segment of a count-segment wheel, centered on the segment.
func (s *Selector) Offset(count int) float64 {
	return (s.src.Float64() - 0.5) * MaxOffsetFraction * SegmentWidth(count)
}
