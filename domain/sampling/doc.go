// Package sampling provides the sampling sets a grading loop draws
// trial inputs from when numerically testing whether two mathematical
// expressions are equivalent.
//
// Value sets produce random numbers:
//   - RealInterval
//   - IntegerRange
//   - DiscreteSet
//   - ComplexRectangle
//   - ComplexSector
//
// Function sets produce callable trial functions:
//   - RandomFunction
//   - SpecificFunctions
//
// Every set consumes entropy from an explicitly injected ports.RNG
// handle, so a seeded generator makes a whole grading run
// reproducible. Constructors validate their configuration through the
// shared schema validator and fail with author-facing configuration
// errors.
package sampling
