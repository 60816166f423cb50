package sampling

import (
	"mathgrader/internal/schema"
	"mathgrader/ports"
)

// RealInterval samples uniformly from an interval of real numbers.
type RealInterval struct {
	start float64
	stop  float64
}

// NewRealInterval builds an interval over [start, stop]. Out-of-order
// bounds are swapped; non-finite bounds are a configuration error.
func NewRealInterval(start, stop float64) (*RealInterval, error) {
	if err := schema.Validate("RealInterval",
		schema.Field{Name: "start", Value: start, Checks: []schema.Check{schema.Finite()}},
		schema.Field{Name: "stop", Value: stop, Checks: []schema.Check{schema.Finite()}},
	); err != nil {
		return nil, err
	}
	if start > stop {
		start, stop = stop, start
	}
	return &RealInterval{start: start, stop: stop}, nil
}

// DefaultRealInterval returns the conventional [1, 5] interval.
func DefaultRealInterval() *RealInterval {
	return &RealInterval{start: 1, stop: 5}
}

// Bounds returns the normalized (start, stop) pair.
func (s *RealInterval) Bounds() (float64, float64) {
	return s.start, s.stop
}

// Sample returns a uniform draw in [start, stop].
func (s *RealInterval) Sample(rng ports.RNG) float64 {
	return s.start + (s.stop-s.start)*rng.Float64()
}

// SampleValue implements VariableSet.
func (s *RealInterval) SampleValue(rng ports.RNG) complex128 {
	return complex(s.Sample(rng), 0)
}

// IntegerRange samples uniformly from a closed range of integers.
// Both endpoints are included; the inclusive upper bound is a
// deliberate deviation from the usual half-open convention, matching
// how authors write variable ranges.
type IntegerRange struct {
	start int
	stop  int
}

// NewIntegerRange builds a range over [start, stop] inclusive.
// Out-of-order bounds are swapped.
func NewIntegerRange(start, stop int) *IntegerRange {
	if start > stop {
		start, stop = stop, start
	}
	return &IntegerRange{start: start, stop: stop}
}

// DefaultIntegerRange returns the conventional [1, 5] range.
func DefaultIntegerRange() *IntegerRange {
	return &IntegerRange{start: 1, stop: 5}
}

// Bounds returns the normalized (start, stop) pair.
func (s *IntegerRange) Bounds() (int, int) {
	return s.start, s.stop
}

// Sample returns a uniform integer draw in [start, stop], both ends
// included.
func (s *IntegerRange) Sample(rng ports.RNG) int {
	return s.start + rng.Intn(s.stop-s.start+1)
}

// SampleValue implements VariableSet.
func (s *IntegerRange) SampleValue(rng ports.RNG) complex128 {
	return complex(float64(s.Sample(rng)), 0)
}
