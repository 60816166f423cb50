package shapes

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"mathgrader/domain/core"
	"mathgrader/internal/errors"
	"mathgrader/internal/schema"
)

// validator checks one argument against its declared shape, returning
// the normalized value (scalars unwrapped, arrays passed through) or a
// message describing the mismatch.
type validator func(v interface{}) (interface{}, error)

// Domain wraps comparison functions so that every call validates its
// argument shapes first. Invalid calls raise a learner-facing domain
// error carrying a complete per-argument report; valid calls delegate
// to the wrapped function unchanged. The wrapper holds no state across
// calls.
type Domain struct {
	name       string
	shapes     []Shape
	validators []validator
}

// Option configures a Domain.
type Option func(*Domain)

// WithName sets the display name used in error reports. Go function
// values carry no name of their own, so authors supply one here; it
// defaults to "function".
func WithName(name string) Option {
	return func(d *Domain) { d.name = name }
}

// NewDomain builds a wrapper for the given ordered argument shapes.
// Each shape is either the scalar tag or a tuple of positive dimension
// sizes; anything else is an author-side configuration error.
func NewDomain(inputShapes []Shape, opts ...Option) (*Domain, error) {
	fields := []schema.Field{
		{Name: "input_shapes", Value: inputShapes, Checks: []schema.Check{schema.NonEmpty()}},
	}
	for i, s := range inputShapes {
		fields = append(fields, schema.Field{
			Name:   fmt.Sprintf("input_shapes[%d]", i),
			Value:  s,
			Checks: []schema.Check{validShape()},
		})
	}
	if err := schema.Validate("SpecifyDomain", fields...); err != nil {
		return nil, err
	}

	d := &Domain{shapes: inputShapes}
	for _, s := range inputShapes {
		if s.IsScalar() {
			d.validators = append(d.validators, scalarValidator)
		} else {
			d.validators = append(d.validators, shapeValidator(s))
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Wrap returns a function that validates its arguments against the
// declared shapes before delegating to fn.
//
// The call protocol: an argument-count mismatch raises a single-line
// domain error and short-circuits. Otherwise every argument is
// validated independently, even after one fails, so the learner gets a
// complete report in a single error. If all arguments pass, fn runs
// with the normalized arguments and its result is returned unchanged.
func (d *Domain) Wrap(fn core.Function) core.Function {
	name := d.name
	if name == "" {
		name = "function"
	}
	shapes := d.shapes
	validators := d.validators

	return func(args ...interface{}) (interface{}, error) {
		if len(args) != len(validators) {
			return nil, errors.DomainError(fmt.Sprintf(
				"There was an error evaluating function %s(...): expected %d inputs, but received %d.",
				name, len(validators), len(args)))
		}

		validated := make([]interface{}, len(args))
		problems := make([]error, len(args))
		failed := false
		for i, arg := range args {
			v, err := validators[i](arg)
			validated[i] = v
			problems[i] = err
			if err != nil {
				failed = true
			}
		}

		if !failed {
			return fn(validated...)
		}

		lines := []string{fmt.Sprintf("There was an error evaluating function %s(...)", name)}
		for i, err := range problems {
			ord := ordinal(i + 1)
			if err != nil {
				lines = append(lines, fmt.Sprintf("%s input has an error: %s", ord, err.Error()))
			} else {
				lines = append(lines, fmt.Sprintf("%s input is ok: received a %s as expected", ord, shapes[i].Describe()))
			}
		}
		return nil, errors.DomainError(strings.Join(lines, "\n\t"))
	}
}

// scalarValidator accepts plain numbers and degenerate one-component
// arrays, unwrapping the latter to a bare number.
func scalarValidator(v interface{}) (interface{}, error) {
	if core.IsNumber(v) {
		return v, nil
	}
	if f, ok := degenerateScalar(v); ok {
		return f, nil
	}
	return nil, fmt.Errorf("received a %s, expected a scalar", Describe(v))
}

// shapeValidator requires an array whose shape matches exactly.
func shapeValidator(s Shape) validator {
	return func(v interface{}) (interface{}, error) {
		switch t := v.(type) {
		case *mat.VecDense:
			if len(s) == 1 && t.Len() == s[0] {
				return t, nil
			}
		case *mat.Dense:
			if len(s) == 2 {
				if r, c := t.Dims(); r == s[0] && c == s[1] {
					return t, nil
				}
			}
		}
		return nil, fmt.Errorf("received a %s, expected a %s", Describe(v), s.Describe())
	}
}

// ordinal returns the 1st/2nd/3rd/nth label for position n.
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}
