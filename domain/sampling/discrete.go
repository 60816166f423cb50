package sampling

import (
	"mathgrader/internal/schema"
	"mathgrader/ports"
)

// DiscreteSet samples uniformly from a fixed, non-empty set of
// numbers. A single value is a legal one-element set and always
// samples to itself.
type DiscreteSet struct {
	values []float64
}

// NewDiscreteSet builds a set from the given values. The set must be
// non-empty and every value finite; the input is copied so later
// mutation of the caller's slice cannot change the set.
func NewDiscreteSet(values ...float64) (*DiscreteSet, error) {
	if err := schema.Validate("DiscreteSet",
		schema.Field{Name: "values", Value: values, Checks: []schema.Check{schema.NonEmpty(), schema.FiniteElements()}},
	); err != nil {
		return nil, err
	}
	owned := make([]float64, len(values))
	copy(owned, values)
	return &DiscreteSet{values: owned}, nil
}

// Values returns a copy of the configured values.
func (s *DiscreteSet) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Sample returns a uniform draw from the configured values.
func (s *DiscreteSet) Sample(rng ports.RNG) float64 {
	return s.values[rng.Intn(len(s.values))]
}

// SampleValue implements VariableSet.
func (s *DiscreteSet) SampleValue(rng ports.RNG) complex128 {
	return complex(s.Sample(rng), 0)
}
