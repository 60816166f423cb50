// Package schema validates declarative field lists for sampling-set
// and wrapper configuration. Each constructor describes its fields
// once; Validate applies every check and folds all failures into a
// single author-facing configuration error.
package schema

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"mathgrader/internal/errors"
)

// Check inspects one configured value and reports why it is invalid.
type Check func(v interface{}) error

// Field pairs a configured value with the checks it must satisfy.
type Field struct {
	Name   string
	Value  interface{}
	Checks []Check
}

// Validate runs every check of every field. On failure it returns one
// configuration error naming the object and each offending field; on
// success it returns nil. All fields are checked even after a failure
// so the author sees the full list in one pass.
func Validate(object string, fields ...Field) error {
	var problems []string
	for _, f := range fields {
		for _, check := range f.Checks {
			if err := check(f.Value); err != nil {
				problems = append(problems, fmt.Sprintf("%s %s", f.Name, err))
				break
			}
		}
	}
	if len(problems) > 0 {
		return errors.ConfigErrorf("invalid %s configuration: %s", object, strings.Join(problems, "; "))
	}
	return nil
}

// Finite requires a float64 that is neither NaN nor infinite.
func Finite() Check {
	return func(v interface{}) error {
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("must be a real number, got %T", v)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("must be finite, got %v", f)
		}
		return nil
	}
}

// Positive requires a finite float64 greater than zero.
func Positive() Check {
	return func(v interface{}) error {
		if err := Finite()(v); err != nil {
			return err
		}
		if v.(float64) <= 0 {
			return fmt.Errorf("must be positive, got %v", v)
		}
		return nil
	}
}

// PositiveInt requires an int greater than zero.
func PositiveInt() Check {
	return func(v interface{}) error {
		n, ok := v.(int)
		if !ok {
			return fmt.Errorf("must be an integer, got %T", v)
		}
		if n <= 0 {
			return fmt.Errorf("must be positive, got %d", n)
		}
		return nil
	}
}

// NonEmpty requires a slice with at least one element.
func NonEmpty() Check {
	return func(v interface{}) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return fmt.Errorf("must be a slice, got %T", v)
		}
		if rv.Len() == 0 {
			return fmt.Errorf("must not be empty")
		}
		return nil
	}
}

// FiniteElements requires every element of a []float64 to be finite.
func FiniteElements() Check {
	return func(v interface{}) error {
		fs, ok := v.([]float64)
		if !ok {
			return fmt.Errorf("must be a slice of real numbers, got %T", v)
		}
		for i, f := range fs {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("element %d must be finite, got %v", i, f)
			}
		}
		return nil
	}
}

// NoNilElements requires every element of a slice to be non-nil.
// Mirrors the callable check on author-supplied function lists.
func NoNilElements() Check {
	return func(v interface{}) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return fmt.Errorf("must be a slice, got %T", v)
		}
		for i := 0; i < rv.Len(); i++ {
			if rv.Index(i).IsNil() {
				return fmt.Errorf("element %d must not be nil", i)
			}
		}
		return nil
	}
}
