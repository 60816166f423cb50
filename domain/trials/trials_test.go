package trials_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathgrader/adapters/rng"
	"mathgrader/domain/sampling"
	"mathgrader/domain/trials"
	"mathgrader/internal/errors"
)

func testVariables(t *testing.T) trials.Variables {
	t.Helper()
	x, err := sampling.NewRealInterval(-1, 1)
	require.NoError(t, err)
	z, err := sampling.NewComplexRectangle(
		sampling.Range{Start: 0, Stop: 1},
		sampling.Range{Start: 0, Stop: 1},
	)
	require.NoError(t, err)
	return trials.Variables{
		"x": x,
		"n": sampling.NewIntegerRange(1, 10),
		"z": z,
	}
}

func TestGenerate_DrawsEveryVariablePerTrial(t *testing.T) {
	batch, err := trials.Generate(rng.Seeded(1), testVariables(t), 25)
	require.NoError(t, err)
	require.Len(t, batch, 25)

	for _, trial := range batch {
		assert.Len(t, trial, 3)
		assert.Contains(t, trial, "x")
		assert.Contains(t, trial, "n")
		assert.Contains(t, trial, "z")
	}
}

func TestGenerate_SeededReproducibility(t *testing.T) {
	vars := testVariables(t)

	a, err := trials.Generate(rng.Seeded(42), vars, 10)
	require.NoError(t, err)
	b, err := trials.Generate(rng.Seeded(42), vars, 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_InvalidRequests(t *testing.T) {
	vars := testVariables(t)

	_, err := trials.Generate(rng.Seeded(1), trials.Variables{}, 5)
	assert.True(t, errors.IsConfigError(err))

	_, err = trials.Generate(rng.Seeded(1), vars, 0)
	assert.True(t, errors.IsConfigError(err))
}

func TestGenerateParallel_ReproducibleAcrossRuns(t *testing.T) {
	vars := testVariables(t)
	ctx := context.Background()

	a, err := trials.GenerateParallel(ctx, rng.NewStreams(7), 7, vars, 50)
	require.NoError(t, err)
	b, err := trials.GenerateParallel(ctx, rng.NewStreams(7), 7, vars, 50)
	require.NoError(t, err)

	assert.Equal(t, a.Trials, b.Trials, "per-trial streams make the batch independent of scheduling")
	assert.NotEqual(t, a.ID, b.ID, "each run gets its own identifier")
	assert.Equal(t, int64(7), a.Seed)
}

func TestGenerateParallel_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := trials.GenerateParallel(ctx, rng.NewStreams(1), 1, testVariables(t), 10)
	assert.Error(t, err)
}
