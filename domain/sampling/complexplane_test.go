package sampling_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathgrader/domain/sampling"
	"mathgrader/internal/errors"
	"mathgrader/internal/testkit"
)

func TestComplexRectangle_SamplesWithinRectangle(t *testing.T) {
	rng := testkit.NewRNG(1)
	set, err := sampling.NewComplexRectangle(
		sampling.Range{Start: 1, Stop: 4},
		sampling.Range{Start: -5, Stop: 0},
	)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		z := set.Sample(rng)
		assert.GreaterOrEqual(t, real(z), 1.0)
		assert.LessOrEqual(t, real(z), 4.0)
		assert.GreaterOrEqual(t, imag(z), -5.0)
		assert.LessOrEqual(t, imag(z), 0.0)
	}
}

func TestComplexRectangle_InvalidRange(t *testing.T) {
	_, err := sampling.NewComplexRectangle(
		sampling.Range{Start: math.NaN(), Stop: 1},
		sampling.Range{Start: 0, Stop: 1},
	)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "re range")
}

func TestDefaultComplexRectangle(t *testing.T) {
	rng := testkit.NewRNG(2)
	set := sampling.DefaultComplexRectangle()

	for i := 0; i < 100; i++ {
		z := set.Sample(rng)
		assert.GreaterOrEqual(t, real(z), 1.0)
		assert.LessOrEqual(t, real(z), 3.0)
		assert.GreaterOrEqual(t, imag(z), 1.0)
		assert.LessOrEqual(t, imag(z), 3.0)
	}
}

func TestComplexSector_SamplesWithinSector(t *testing.T) {
	rng := testkit.NewRNG(3)
	set, err := sampling.NewComplexSector(
		sampling.Range{Start: 0, Stop: 1},
		sampling.Range{Start: -math.Pi, Stop: math.Pi},
	)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		z := set.Sample(rng)
		assert.LessOrEqual(t, cmplx.Abs(z), 1.0+1e-12)
		assert.LessOrEqual(t, math.Abs(cmplx.Phase(z)), math.Pi)
	}
}

func TestDefaultComplexSector(t *testing.T) {
	rng := testkit.NewRNG(4)
	set := sampling.DefaultComplexSector()

	for i := 0; i < 100; i++ {
		z := set.Sample(rng)
		assert.GreaterOrEqual(t, cmplx.Abs(z), 1.0-1e-12)
		assert.LessOrEqual(t, cmplx.Abs(z), 3.0+1e-12)
		assert.GreaterOrEqual(t, cmplx.Phase(z), -1e-12)
		assert.LessOrEqual(t, cmplx.Phase(z), math.Pi/2+1e-12)
	}
}

func TestComplexSector_InvalidRange(t *testing.T) {
	_, err := sampling.NewComplexSector(
		sampling.Range{Start: 0, Stop: 1},
		sampling.Range{Start: 0, Stop: math.Inf(1)},
	)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "argument range")
}
