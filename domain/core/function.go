package core

// Function is a callable trial input: a randomly generated function, an
// author-supplied comparison function, or a domain-wrapped one. The
// grading loop feeds it sampled values and compares outputs.
//
// Arguments and results are plain numbers (float64, int, complex128)
// or gonum vectors/matrices; which of those a given Function accepts
// is the producer's contract.
type Function func(args ...interface{}) (interface{}, error)

// AsFloat converts a plain numeric value to float64. The bool result
// is false for non-numeric values and for complex numbers with a
// nonzero imaginary part.
func AsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case complex128:
		if imag(n) == 0 {
			return real(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// IsNumber reports whether v is a plain scalar number, including
// complex values.
func IsNumber(v interface{}) bool {
	switch v.(type) {
	case float64, float32, int, int64, complex128, complex64:
		return true
	default:
		return false
	}
}
