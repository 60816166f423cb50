// Package trials assembles the per-trial input batches the grading
// loop feeds to the expected and submitted expressions. Each trial
// draws one fresh value per declared variable; comparing the resulting
// outputs is the caller's concern.
package trials

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mathgrader/domain/sampling"
	"mathgrader/internal/errors"
	"mathgrader/ports"
)

// Variables maps variable names to the sampling sets that produce
// their trial values.
type Variables map[string]sampling.VariableSet

// Run is one batch of generated trials, tagged so diagnostics can
// reference the exact inputs a verdict was computed from.
type Run struct {
	ID     uuid.UUID
	Seed   int64
	Trials []map[string]complex128
}

// Generate draws n trials sequentially from one RNG handle. Variables
// are sampled in name order within each trial so a seeded generator
// reproduces the batch exactly.
func Generate(rng ports.RNG, vars Variables, n int) ([]map[string]complex128, error) {
	if err := checkRequest(vars, n); err != nil {
		return nil, err
	}
	names := sortedNames(vars)
	out := make([]map[string]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = sampleOnce(rng, vars, names)
	}
	return out, nil
}

// GenerateParallel draws n trials concurrently. Every trial gets its
// own RNG stream derived from the trial index, so the batch is
// identical regardless of how the goroutines interleave and can be
// reproduced from the base seed alone.
func GenerateParallel(ctx context.Context, streams ports.StreamFactory, seed int64, vars Variables, n int) (*Run, error) {
	if err := checkRequest(vars, n); err != nil {
		return nil, err
	}
	names := sortedNames(vars)
	out := make([]map[string]complex128, n)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := streams.Stream(fmt.Sprintf("trial-%d", i))
			out[i] = sampleOnce(rng, vars, names)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Run{ID: uuid.New(), Seed: seed, Trials: out}, nil
}

func checkRequest(vars Variables, n int) error {
	if len(vars) == 0 {
		return errors.ConfigError("no variables to sample")
	}
	if n <= 0 {
		return errors.ConfigErrorf("trial count must be positive, got %d", n)
	}
	return nil
}

func sortedNames(vars Variables) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sampleOnce(rng ports.RNG, vars Variables, names []string) map[string]complex128 {
	values := make(map[string]complex128, len(names))
	for _, name := range names {
		values[name] = vars[name].SampleValue(rng)
	}
	return values
}
