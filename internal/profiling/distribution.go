// Package profiling summarizes the empirical distribution of a
// sampling set's draws. Authors use it to sanity-check that a
// configured range produces the values they expect before a problem
// goes live.
package profiling

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"mathgrader/domain/sampling"
	"mathgrader/internal/errors"
	"mathgrader/ports"
)

// Summary holds the summary statistics of a batch of draws. Complex
// draws are summarized by their real parts.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize draws n samples from the set and computes summary
// statistics. At least two draws are required.
func Summarize(rng ports.RNG, set sampling.VariableSet, n int) (Summary, error) {
	if n < 2 {
		return Summary{}, errors.ConfigErrorf("need at least 2 draws to summarize, got %d", n)
	}

	draws := make([]float64, n)
	for i := range draws {
		draws[i] = real(set.SampleValue(rng))
	}

	mean, err := stats.Mean(draws)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := stats.StandardDeviation(draws)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(draws)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(draws)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(draws)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:      n,
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}, nil
}

// UniformityPValue runs a chi-square goodness-of-fit test of the draws
// against a uniform distribution over their observed range, binned
// into the given number of equal-width bins. Small p-values indicate
// the draws are unlikely to be uniform. Degenerate inputs (fewer draws
// than bins, or zero-width range) return 0.
func UniformityPValue(draws []float64, bins int) float64 {
	if bins < 2 || len(draws) < bins {
		return 0
	}
	min, err := stats.Min(draws)
	if err != nil {
		return 0
	}
	max, err := stats.Max(draws)
	if err != nil {
		return 0
	}
	width := (max - min) / float64(bins)
	if width <= 0 {
		return 0
	}

	observed := make([]float64, bins)
	for _, d := range draws {
		idx := int((d - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		observed[idx]++
	}

	expected := float64(len(draws)) / float64(bins)
	chi2 := 0.0
	for _, o := range observed {
		diff := o - expected
		chi2 += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(bins - 1)}
	return 1 - dist.CDF(chi2)
}
