package mixer

import (
	"fmt"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
)

// Kind names a mixer function.
type Kind string

// Supported function kinds.
const (
	KindGeometricMean    Kind = "geometric_mean"
	KindSigmoid          Kind = "sigmoid"
	KindSigmoidSqrt      Kind = "sigmoid_sqrt"
	KindAlgebraicSigmoid Kind = "algebraic_sigmoid"
)

// FunctionType is a serializable function description. Parameters not used
// by the Kind are ignored.
type FunctionType struct {
	Kind      Kind               `yaml:"kind" json:"kind"`
	MaxPoints uint64             `yaml:"max_points,omitempty" json:"max_points,omitempty"`
	A         fixedpoint.Decimal `yaml:"a,omitempty" json:"a,omitempty"`
	P         fixedpoint.Decimal `yaml:"p,omitempty" json:"p,omitempty"`
	S         fixedpoint.Decimal `yaml:"s,omitempty" json:"s,omitempty"`
}

// Function validates parameters and builds the described function.
func (t FunctionType) Function() (Function, error) {
	var (
		fn  Function
		err error
	)

	switch t.Kind {
	case KindGeometricMean:
		return GeometricMean{}, nil
	case KindSigmoid:
		fn, err = NewSigmoid(t.MaxPoints, t.P, t.S)
	case KindSigmoidSqrt:
		fn, err = NewSigmoidSqrt(t.MaxPoints, t.S)
	case KindAlgebraicSigmoid:
		fn, err = NewAlgebraicSigmoid(t.MaxPoints, t.A, t.P, t.S)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s function: %w", t.Kind, err)
	}
	return fn, nil
}

// KindOf returns kind of the function. Functions defined outside of the
// package are reported as "custom".
func KindOf(fn Function) Kind {
	switch fn.(type) {
	case GeometricMean, *GeometricMean:
		return KindGeometricMean
	case *Sigmoid:
		return KindSigmoid
	case *SigmoidSqrt:
		return KindSigmoidSqrt
	case *AlgebraicSigmoid:
		return KindAlgebraicSigmoid
	default:
		return "custom"
	}
}
