package ports

// RNG is the uniform random primitive every sampling set consumes.
// *math/rand.Rand satisfies it. Samplers take the handle explicitly so
// the grading loop can inject a seeded generator for reproducible runs
// without touching global state.
type RNG interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// Intn returns a uniform integer draw in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// StreamFactory derives named deterministic RNG streams from one base
// seed. Two factories built from the same seed hand out identical
// streams for the same name, so concurrent trial generation stays
// reproducible regardless of goroutine scheduling.
type StreamFactory interface {
	Stream(name string) RNG
}
