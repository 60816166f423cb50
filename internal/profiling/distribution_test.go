package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathgrader/domain/sampling"
	"mathgrader/internal/errors"
	"mathgrader/internal/testkit"
)

func TestSummarize_RealInterval(t *testing.T) {
	rng := testkit.NewRNG(1)
	set, err := sampling.NewRealInterval(0, 10)
	require.NoError(t, err)

	summary, err := Summarize(rng, set, 5000)
	require.NoError(t, err)

	assert.Equal(t, 5000, summary.N)
	assert.InDelta(t, 5.0, summary.Mean, 0.3)
	assert.InDelta(t, 5.0, summary.Median, 0.4)
	assert.GreaterOrEqual(t, summary.Min, 0.0)
	assert.LessOrEqual(t, summary.Max, 10.0)
	// uniform on [0,10] has stddev 10/sqrt(12) ~ 2.89
	assert.InDelta(t, 2.89, summary.StdDev, 0.3)
}

func TestSummarize_TooFewDraws(t *testing.T) {
	rng := testkit.NewRNG(2)
	_, err := Summarize(rng, sampling.DefaultRealInterval(), 1)
	assert.True(t, errors.IsConfigError(err))
}

func TestUniformityPValue_UniformDraws(t *testing.T) {
	rng := testkit.NewRNG(3)
	set, err := sampling.NewRealInterval(0, 1)
	require.NoError(t, err)

	draws := testkit.DrawReals(rng, set, 2000)
	p := UniformityPValue(draws, 10)
	assert.Greater(t, p, 0.001, "uniform draws should not be rejected")
	assert.LessOrEqual(t, p, 1.0)
}

func TestUniformityPValue_SkewedDraws(t *testing.T) {
	rng := testkit.NewRNG(4)
	set, err := sampling.NewRealInterval(0, 1)
	require.NoError(t, err)

	draws := testkit.DrawReals(rng, set, 2000)
	for i, d := range draws {
		draws[i] = d * d // pile mass toward zero
	}
	p := UniformityPValue(draws, 10)
	assert.Less(t, p, 0.001, "strongly skewed draws should be rejected")
}

func TestUniformityPValue_Degenerate(t *testing.T) {
	assert.Zero(t, UniformityPValue([]float64{1, 1, 1, 1}, 2))
	assert.Zero(t, UniformityPValue([]float64{1, 2}, 10))
	assert.Zero(t, UniformityPValue(nil, 2))
}
