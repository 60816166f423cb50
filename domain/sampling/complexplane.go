package sampling

import (
	"math"
	"math/cmplx"

	"mathgrader/internal/errors"
	"mathgrader/ports"
)

// ComplexRectangle samples uniformly from a rectangle in the complex
// plane. It owns two RealInterval sub-sets, one per axis; real and
// imaginary parts are drawn independently, so the distribution is
// uniform over the rectangle's area.
type ComplexRectangle struct {
	re *RealInterval
	im *RealInterval
}

// NewComplexRectangle builds a rectangle from real-part and
// imaginary-part ranges.
func NewComplexRectangle(re, im Range) (*ComplexRectangle, error) {
	reSet, err := NewRealInterval(re.Start, re.Stop)
	if err != nil {
		return nil, errors.Wrap(err, "ComplexRectangle re range")
	}
	imSet, err := NewRealInterval(im.Start, im.Stop)
	if err != nil {
		return nil, errors.Wrap(err, "ComplexRectangle im range")
	}
	return &ComplexRectangle{re: reSet, im: imSet}, nil
}

// DefaultComplexRectangle returns the conventional [1,3] x [1,3]
// rectangle.
func DefaultComplexRectangle() *ComplexRectangle {
	return &ComplexRectangle{
		re: &RealInterval{start: 1, stop: 3},
		im: &RealInterval{start: 1, stop: 3},
	}
}

// Sample returns re + i*im with both parts drawn independently.
func (s *ComplexRectangle) Sample(rng ports.RNG) complex128 {
	return complex(s.re.Sample(rng), s.im.Sample(rng))
}

// SampleValue implements VariableSet.
func (s *ComplexRectangle) SampleValue(rng ports.RNG) complex128 {
	return s.Sample(rng)
}

// ComplexSector samples from an annular sector in the complex plane,
// given ranges of modulus and argument. Both are drawn uniformly in
// their linear ranges, which is not area-uniform over the sector: the
// resulting density is proportional to the radius. That bias is the
// established sampling behavior and is kept as is.
type ComplexSector struct {
	modulus  *RealInterval
	argument *RealInterval
}

// NewComplexSector builds a sector from modulus and argument ranges
// (the argument is in radians).
func NewComplexSector(modulus, argument Range) (*ComplexSector, error) {
	modSet, err := NewRealInterval(modulus.Start, modulus.Stop)
	if err != nil {
		return nil, errors.Wrap(err, "ComplexSector modulus range")
	}
	argSet, err := NewRealInterval(argument.Start, argument.Stop)
	if err != nil {
		return nil, errors.Wrap(err, "ComplexSector argument range")
	}
	return &ComplexSector{modulus: modSet, argument: argSet}, nil
}

// DefaultComplexSector returns the conventional sector with modulus in
// [1,3] and argument in [0, pi/2].
func DefaultComplexSector() *ComplexSector {
	return &ComplexSector{
		modulus:  &RealInterval{start: 1, stop: 3},
		argument: &RealInterval{start: 0, stop: math.Pi / 2},
	}
}

// Sample returns modulus * exp(i*argument) with both parts drawn
// independently.
func (s *ComplexSector) Sample(rng ports.RNG) complex128 {
	return cmplx.Rect(s.modulus.Sample(rng), s.argument.Sample(rng))
}

// SampleValue implements VariableSet.
func (s *ComplexSector) SampleValue(rng ports.RNG) complex128 {
	return s.Sample(rng)
}
