package sampling

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"mathgrader/domain/core"
	"mathgrader/internal/errors"
	"mathgrader/internal/schema"
	"mathgrader/ports"
)

// RandomFunctionConfig configures a RandomFunction set.
type RandomFunctionConfig struct {
	InputDim  int     // number of arguments the generated functions take
	OutputDim int     // 1 means the functions return a bare scalar
	NumTerms  int     // sine terms summed per output component
	Center    float64 // vertical offset of the oscillations
	Amplitude float64 // scale of the oscillations
}

// DefaultRandomFunctionConfig returns the conventional R -> R setup:
// one input, one output, three terms, centered at 0 with amplitude 10.
func DefaultRandomFunctionConfig() RandomFunctionConfig {
	return RandomFunctionConfig{
		InputDim:  1,
		OutputDim: 1,
		NumTerms:  3,
		Center:    0,
		Amplitude: 10,
	}
}

// RandomFunction generates well-behaved random continuous functions on
// demand, implemented as sums of sine terms with random amplitude,
// frequency and phase.
type RandomFunction struct {
	cfg RandomFunctionConfig
}

// NewRandomFunction validates the configuration and builds the set.
// Dimensions and term count must be positive integers, the amplitude a
// positive real, the center finite.
func NewRandomFunction(cfg RandomFunctionConfig) (*RandomFunction, error) {
	if err := schema.Validate("RandomFunction",
		schema.Field{Name: "input_dim", Value: cfg.InputDim, Checks: []schema.Check{schema.PositiveInt()}},
		schema.Field{Name: "output_dim", Value: cfg.OutputDim, Checks: []schema.Check{schema.PositiveInt()}},
		schema.Field{Name: "num_terms", Value: cfg.NumTerms, Checks: []schema.Check{schema.PositiveInt()}},
		schema.Field{Name: "center", Value: cfg.Center, Checks: []schema.Check{schema.Finite()}},
		schema.Field{Name: "amplitude", Value: cfg.Amplitude, Checks: []schema.Check{schema.Positive()}},
	); err != nil {
		return nil, err
	}
	return &RandomFunction{cfg: cfg}, nil
}

// Sample materializes one random function. Fresh coefficient matrices
// A, B, C of logical shape (outputDim, numTerms, inputDim) are drawn
// per call and owned solely by the returned closure, so successive
// samples are independent while any single sample is deterministic:
//
//	f(x)_i = center + amplitude/numTerms * sum_jk A_ijk * sin(B_ijk*x_k + C_ijk)
//
// Amplitudes A are uniform in [0.5, 1), frequencies B uniform in
// [-pi, pi), phases C uniform in [0, 2pi). When OutputDim is 1 the
// closure returns a bare float64 instead of a one-element vector.
//
// The argument count is checked inside the closure on every
// invocation, not here; a wrong count is reported as a configuration
// error naming the expected and received counts.
func (s *RandomFunction) Sample(rng ports.RNG) core.Function {
	inputDim := s.cfg.InputDim
	outputDim := s.cfg.OutputDim
	numTerms := s.cfg.NumTerms
	center := s.cfg.Center
	scale := s.cfg.Amplitude / float64(numTerms)

	A := make([]*mat.Dense, outputDim)
	B := make([]*mat.Dense, outputDim)
	C := make([]*mat.Dense, outputDim)
	for i := 0; i < outputDim; i++ {
		A[i] = randomMatrix(rng, numTerms, inputDim, func(u float64) float64 { return u/2 + 0.5 })
		B[i] = randomMatrix(rng, numTerms, inputDim, func(u float64) float64 { return 2 * math.Pi * (u - 0.5) })
		C[i] = randomMatrix(rng, numTerms, inputDim, func(u float64) float64 { return 2 * math.Pi * u })
	}

	return func(args ...interface{}) (interface{}, error) {
		if len(args) != inputDim {
			return nil, errors.ConfigErrorf("expected %d arguments, but received %d", inputDim, len(args))
		}
		xs := make([]float64, inputDim)
		for k, arg := range args {
			x, ok := core.AsFloat(arg)
			if !ok {
				return nil, errors.ConfigErrorf("argument %d: expected a real number, received %T", k+1, arg)
			}
			xs[k] = x
		}

		out := mat.NewVecDense(outputDim, nil)
		for i := 0; i < outputDim; i++ {
			sum := 0.0
			for j := 0; j < numTerms; j++ {
				for k := 0; k < inputDim; k++ {
					sum += A[i].At(j, k) * math.Sin(B[i].At(j, k)*xs[k]+C[i].At(j, k))
				}
			}
			out.SetVec(i, center+scale*sum)
		}
		if outputDim == 1 {
			return out.AtVec(0), nil
		}
		return out, nil
	}
}

// SampleFunc implements FunctionSet.
func (s *RandomFunction) SampleFunc(rng ports.RNG) core.Function {
	return s.Sample(rng)
}

// randomMatrix fills a rows-by-cols matrix with transformed uniform
// draws.
func randomMatrix(rng ports.RNG, rows, cols int, transform func(float64) float64) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for j := 0; j < rows; j++ {
		for k := 0; k < cols; k++ {
			m.Set(j, k, transform(rng.Float64()))
		}
	}
	return m
}

// SpecificFunctions samples uniformly from a fixed list of
// author-supplied functions. The callables are referenced, never
// copied or wrapped, and no arity or shape validation is applied to
// them; their correctness is the author's responsibility.
type SpecificFunctions struct {
	fns []core.Function
}

// NewSpecificFunctions builds the set from one or more callables. The
// list must be non-empty and free of nil entries.
func NewSpecificFunctions(fns ...core.Function) (*SpecificFunctions, error) {
	if err := schema.Validate("SpecificFunctions",
		schema.Field{Name: "values", Value: fns, Checks: []schema.Check{schema.NonEmpty(), schema.NoNilElements()}},
	); err != nil {
		return nil, err
	}
	owned := make([]core.Function, len(fns))
	copy(owned, fns)
	return &SpecificFunctions{fns: owned}, nil
}

// Sample returns one of the configured callables, chosen uniformly.
func (s *SpecificFunctions) Sample(rng ports.RNG) core.Function {
	return s.fns[rng.Intn(len(s.fns))]
}

// SampleFunc implements FunctionSet.
func (s *SpecificFunctions) SampleFunc(rng ports.RNG) core.Function {
	return s.Sample(rng)
}
