// Package shapes validates the shapes of arguments passed into
// comparison functions. It provides the learner-facing descriptions of
// runtime values, the shape specifications authors declare, and the
// Domain wrapper that checks call arguments against those
// specifications before a function executes.
package shapes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"mathgrader/domain/core"
)

// Describe maps a runtime value to the wording used in validation
// reports: "scalar", "vector of length N", "matrix of shape
// (rows: R, cols: C)", or the value's Go type for anything else.
func Describe(v interface{}) string {
	switch t := v.(type) {
	case *mat.VecDense:
		return fmt.Sprintf("vector of length %d", t.Len())
	case *mat.Dense:
		r, c := t.Dims()
		return fmt.Sprintf("matrix of shape (rows: %d, cols: %d)", r, c)
	default:
		if core.IsNumber(v) {
			return "scalar"
		}
		return fmt.Sprintf("%T", v)
	}
}

// degenerateScalar unwraps a one-component array to its bare number.
// The second result is false for everything that is not a 1-vector or
// a 1x1 matrix.
func degenerateScalar(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case *mat.VecDense:
		if t.Len() == 1 {
			return t.AtVec(0), true
		}
	case *mat.Dense:
		r, c := t.Dims()
		if r == 1 && c == 1 {
			return t.At(0, 0), true
		}
	}
	return 0, false
}
