package sampling

import (
	"mathgrader/domain/core"
	"mathgrader/ports"
)

// VariableSet produces one random value per request. The closed set of
// implementations is RealInterval, IntegerRange, DiscreteSet,
// ComplexRectangle and ComplexSector; each also exposes a
// precisely-typed Sample method.
//
// SampleValue returns complex128 because it is the superset of every
// value a set can produce; real-valued sets return values with a zero
// imaginary part.
type VariableSet interface {
	SampleValue(rng ports.RNG) complex128
}

// FunctionSet produces one random callable per request. The closed set
// of implementations is RandomFunction and SpecificFunctions.
type FunctionSet interface {
	SampleFunc(rng ports.RNG) core.Function
}

var (
	_ VariableSet = (*RealInterval)(nil)
	_ VariableSet = (*IntegerRange)(nil)
	_ VariableSet = (*DiscreteSet)(nil)
	_ VariableSet = (*ComplexRectangle)(nil)
	_ VariableSet = (*ComplexSector)(nil)

	_ FunctionSet = (*RandomFunction)(nil)
	_ FunctionSet = (*SpecificFunctions)(nil)
)

// Range is an inclusive real interval used to configure the
// complex-plane sets. Out-of-order bounds are swapped during
// construction.
type Range struct {
	Start float64
	Stop  float64
}
