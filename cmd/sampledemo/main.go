// Command sampledemo seeds the sampling sets and prints a trial batch,
// a sampled random function, and a distribution summary. Useful for
// eyeballing what a configured problem will feed the grading loop.
//
// Configuration comes from the environment (optionally via .env):
//
//	SAMPLE_SEED    base seed for the run (default 1)
//	SAMPLE_TRIALS  number of trials to generate (default 5)
//	LOG_LEVEL      ERROR, WARN, INFO or DEBUG (default INFO)
package main

import (
	"context"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"mathgrader/adapters/rng"
	"mathgrader/domain/sampling"
	"mathgrader/domain/trials"
	"mathgrader/internal"
	"mathgrader/internal/profiling"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("no .env file found, using environment variables")
	}
	logger := internal.NewDefaultLogger()

	seed := envInt64(logger, "SAMPLE_SEED", 1)
	n := envInt(logger, "SAMPLE_TRIALS", 5)

	x, err := sampling.NewRealInterval(-2, 4)
	if err != nil {
		logger.Error("configuring x: %v", err)
		os.Exit(1)
	}
	z, err := sampling.NewComplexSector(
		sampling.Range{Start: 0, Stop: 1},
		sampling.Range{Start: -math.Pi, Stop: math.Pi},
	)
	if err != nil {
		logger.Error("configuring z: %v", err)
		os.Exit(1)
	}
	vars := trials.Variables{
		"x": x,
		"n": sampling.NewIntegerRange(1, 10),
		"z": z,
	}

	run, err := trials.GenerateParallel(context.Background(), rng.NewStreams(seed), seed, vars, n)
	if err != nil {
		logger.Error("generating trials: %v", err)
		os.Exit(1)
	}
	logger.Info("run %s (seed %d): %d trials", run.ID, run.Seed, len(run.Trials))
	for i, trial := range run.Trials {
		logger.Info("  trial %d: x=%v n=%v z=%v", i, real(trial["x"]), real(trial["n"]), trial["z"])
	}

	funcs, err := sampling.NewRandomFunction(sampling.DefaultRandomFunctionConfig())
	if err != nil {
		logger.Error("configuring random function: %v", err)
		os.Exit(1)
	}
	f := funcs.Sample(rng.Seeded(seed))
	for _, in := range []float64{0, 0.5, 1} {
		out, err := f(in)
		if err != nil {
			logger.Error("evaluating sampled function: %v", err)
			os.Exit(1)
		}
		logger.Info("  f(%v) = %v", in, out)
	}

	summary, err := profiling.Summarize(rng.Seeded(seed), x, 5000)
	if err != nil {
		logger.Error("profiling x: %v", err)
		os.Exit(1)
	}
	logger.Info("x over %d draws: mean=%.3f stddev=%.3f min=%.3f max=%.3f",
		summary.N, summary.Mean, summary.StdDev, summary.Min, summary.Max)
}

func envInt64(logger *internal.Logger, key string, fallback int64) int64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
		logger.Warn("ignoring invalid %s=%q", key, raw)
	}
	return fallback
}

func envInt(logger *internal.Logger, key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
		logger.Warn("ignoring invalid %s=%q", key, raw)
	}
	return fallback
}
