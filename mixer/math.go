package mixer

import (
	"math/big"
	"sync"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/shopspring/decimal"
)

const (
	// digits kept by logarithm and exponent when raising to a fractional power
	powPrecision = 20
	// digits kept by the sigmoid exponential term
	sigmoidExpPrecision = 10
	// digits kept by the sigmoid ratio and the algebraic sigmoid quotient
	ratioPrecision = 16
	// digits kept by square roots
	sqrtPrecision = 18
)

var (
	one = decimal.New(1, 0)
	two = decimal.New(2, 0)

	// e^-64 rounds to zero at sigmoidExpPrecision digits.
	maxSigmoidExponent = decimal.New(64, 0)

	// decimal.ExpTaylor caches factorials in a package-level slice.
	expMtx sync.Mutex
)

func toDecimal(d fixedpoint.Decimal) decimal.Decimal {
	return decimal.NewFromBigInt(d.Atomics(), -fixedpoint.DecimalPlaces)
}

func uintToDecimal(x uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
}

func exp(x decimal.Decimal, precision int32) (decimal.Decimal, error) {
	expMtx.Lock()
	defer expMtx.Unlock()

	res, err := x.ExpTaylor(precision)
	if err != nil {
		return decimal.Decimal{}, &ComputationOverflowError{Op: "exp", Err: err}
	}
	return res, nil
}

// pow returns x^p for positive x as exp(p * ln(x)).
func pow(x, p decimal.Decimal) (decimal.Decimal, error) {
	ln, err := x.Ln(powPrecision)
	if err != nil {
		return decimal.Decimal{}, &ComputationOverflowError{Op: "ln", Err: err}
	}
	return exp(ln.Mul(p).Round(powPrecision), powPrecision)
}

// sqrt returns square root of non-negative x rounded down to sqrtPrecision
// digits.
func sqrt(x decimal.Decimal) decimal.Decimal {
	scaled := x.Shift(2 * sqrtPrecision).BigInt()
	return decimal.NewFromBigInt(new(big.Int).Sqrt(scaled), -sqrtPrecision)
}

// isqrt returns floor(sqrt(x * y)) computed without overflow.
func isqrt(x, y uint64) uint64 {
	prod := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
	return new(big.Int).Sqrt(prod).Uint64()
}

// toPoints floors non-negative x and converts it into uint64.
func toPoints(x decimal.Decimal) (uint64, error) {
	if x.Sign() < 0 {
		return 0, &ComputationOverflowError{Op: "negative reward"}
	}
	v := x.Floor().BigInt()
	if !v.IsUint64() {
		return 0, ErrRewardOverflow
	}
	return v.Uint64(), nil
}
