package mixer

import (
	"math"
	"strconv"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/shopspring/decimal"
)

// Function combines stake and engagement points into a single score.
type Function interface {
	Score(stake, engagement uint64) (uint64, error)
}

var (
	maxA     = fixedpoint.NewDecimalFromUint64(5)
	unitMax  = fixedpoint.NewDecimalFromUint64(1)
	maxMaxPt = uint64(math.MaxInt64)
)

func checkMaxPoints(maxPoints uint64) error {
	if maxPoints > maxMaxPt {
		return &ParameterRangeError{
			Name:  "max_points",
			Value: strconv.FormatUint(maxPoints, 10),
			Bound: "<= " + strconv.FormatUint(maxMaxPt, 10),
		}
	}
	return nil
}

// checkRange checks that v is in the (0, max] interval.
func checkRange(name string, v, max fixedpoint.Decimal) error {
	if v.IsZero() || v.Cmp(max) > 0 {
		return &ParameterRangeError{Name: name, Value: v.String(), Bound: "in (0, " + max.String() + "]"}
	}
	return nil
}

// GeometricMean scores as floor(sqrt(stake * engagement)). It is unbounded.
type GeometricMean struct{}

// Score implements Function.
func (GeometricMean) Score(stake, engagement uint64) (uint64, error) {
	return isqrt(stake, engagement), nil
}

// Sigmoid scores as max_points * (2 / (1 + e^(-s * stake^p * engagement^p)) - 1).
type Sigmoid struct {
	maxPoints decimal.Decimal
	p         decimal.Decimal
	s         decimal.Decimal
}

// NewSigmoid validates parameters and returns Sigmoid function.
func NewSigmoid(maxPoints uint64, p, s fixedpoint.Decimal) (*Sigmoid, error) {
	if err := checkMaxPoints(maxPoints); err != nil {
		return nil, err
	}
	if err := checkRange("p", p, unitMax); err != nil {
		return nil, err
	}
	if err := checkRange("s", s, unitMax); err != nil {
		return nil, err
	}
	return &Sigmoid{
		maxPoints: uintToDecimal(maxPoints),
		p:         toDecimal(p),
		s:         toDecimal(s),
	}, nil
}

// Score implements Function.
func (f *Sigmoid) Score(stake, engagement uint64) (uint64, error) {
	if stake == 0 || engagement == 0 {
		return 0, nil
	}
	x, err := pow(uintToDecimal(stake), f.p)
	if err != nil {
		return 0, err
	}
	y, err := pow(uintToDecimal(engagement), f.p)
	if err != nil {
		return 0, err
	}
	return sigmoid(f.maxPoints, f.s.Mul(x).Mul(y))
}

// SigmoidSqrt is Sigmoid with p = 0.5 where the power is replaced by an
// integer square root of the product.
type SigmoidSqrt struct {
	maxPoints decimal.Decimal
	s         decimal.Decimal
}

// NewSigmoidSqrt validates parameters and returns SigmoidSqrt function.
func NewSigmoidSqrt(maxPoints uint64, s fixedpoint.Decimal) (*SigmoidSqrt, error) {
	if err := checkMaxPoints(maxPoints); err != nil {
		return nil, err
	}
	if err := checkRange("s", s, unitMax); err != nil {
		return nil, err
	}
	return &SigmoidSqrt{
		maxPoints: uintToDecimal(maxPoints),
		s:         toDecimal(s),
	}, nil
}

// Score implements Function.
func (f *SigmoidSqrt) Score(stake, engagement uint64) (uint64, error) {
	if stake == 0 || engagement == 0 {
		return 0, nil
	}
	return sigmoid(f.maxPoints, f.s.Mul(uintToDecimal(isqrt(stake, engagement))))
}

func sigmoid(maxPoints, z decimal.Decimal) (uint64, error) {
	e := decimal.Zero
	if z.LessThanOrEqual(maxSigmoidExponent) {
		var err error
		e, err = exp(z.Neg().Round(powPrecision), sigmoidExpPrecision)
		if err != nil {
			return 0, err
		}
	}
	ratio := two.DivRound(one.Add(e), ratioPrecision)
	return toPoints(maxPoints.Mul(ratio.Sub(one)))
}

// AlgebraicSigmoid scores as max_points * x / sqrt(a + x^2) where
// x = s * stake^p * engagement^p.
type AlgebraicSigmoid struct {
	maxPoints decimal.Decimal
	a         decimal.Decimal
	p         decimal.Decimal
	s         decimal.Decimal
}

// NewAlgebraicSigmoid validates parameters and returns AlgebraicSigmoid
// function.
func NewAlgebraicSigmoid(maxPoints uint64, a, p, s fixedpoint.Decimal) (*AlgebraicSigmoid, error) {
	if err := checkMaxPoints(maxPoints); err != nil {
		return nil, err
	}
	if err := checkRange("a", a, maxA); err != nil {
		return nil, err
	}
	if err := checkRange("p", p, unitMax); err != nil {
		return nil, err
	}
	if err := checkRange("s", s, unitMax); err != nil {
		return nil, err
	}
	return &AlgebraicSigmoid{
		maxPoints: uintToDecimal(maxPoints),
		a:         toDecimal(a),
		p:         toDecimal(p),
		s:         toDecimal(s),
	}, nil
}

// Score implements Function.
func (f *AlgebraicSigmoid) Score(stake, engagement uint64) (uint64, error) {
	if stake == 0 || engagement == 0 {
		return 0, nil
	}
	x, err := pow(uintToDecimal(stake), f.p)
	if err != nil {
		return 0, err
	}
	y, err := pow(uintToDecimal(engagement), f.p)
	if err != nil {
		return 0, err
	}
	xy := f.s.Mul(x).Mul(y)
	denom := sqrt(f.a.Add(xy.Mul(xy)))
	if denom.IsZero() {
		return 0, &ComputationOverflowError{Op: "sqrt"}
	}
	return toPoints(f.maxPoints.Mul(xy).DivRound(denom, ratioPrecision))
}
