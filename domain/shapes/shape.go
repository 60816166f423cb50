package shapes

import (
	"fmt"

	"mathgrader/internal/schema"
)

// Shape declares the expected dimensionality of one function argument:
// the scalar tag (Scalar) or a tuple of positive dimension sizes. The
// consumed array type is gonum mat, so shapes are at most rank 2.
// A Shape is declared once when the wrapper is built and never
// modified afterwards.
type Shape []int

// Scalar is the shape of a plain number. One-component arrays also
// satisfy it and are unwrapped to the bare number.
func Scalar() Shape { return Shape{1} }

// Vector is the shape of an n-component vector.
func Vector(n int) Shape { return Shape{n} }

// Matrix is the shape of a rows-by-cols matrix.
func Matrix(rows, cols int) Shape { return Shape{rows, cols} }

// IsScalar reports whether s is the scalar tag.
func (s Shape) IsScalar() bool {
	return len(s) == 1 && s[0] == 1
}

// Describe returns the expected-value wording for the shape.
func (s Shape) Describe() string {
	if s.IsScalar() {
		return "scalar"
	}
	switch len(s) {
	case 1:
		return fmt.Sprintf("vector of length %d", s[0])
	case 2:
		return fmt.Sprintf("matrix of shape (rows: %d, cols: %d)", s[0], s[1])
	}
	return fmt.Sprintf("array of shape %v", []int(s))
}

// validShape is the schema check applied to every declared shape.
func validShape() schema.Check {
	return func(v interface{}) error {
		s, ok := v.(Shape)
		if !ok {
			return fmt.Errorf("must be a shape, got %T", v)
		}
		if len(s) == 0 || len(s) > 2 {
			return fmt.Errorf("must have rank 1 or 2, got rank %d", len(s))
		}
		for _, dim := range s {
			if dim <= 0 {
				return fmt.Errorf("dimensions must be positive, got %v", []int(s))
			}
		}
		return nil
	}
}
