package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

// DecimalPlaces is the number of fractional digits kept by Decimal.
const DecimalPlaces = 18

var decimalOne = new(big.Int).Exp(big.NewInt(10), big.NewInt(DecimalPlaces), nil)

// Decimal is a non-negative fixed-point number with 18 fractional digits.
// Zero value is 0.
type Decimal struct {
	atomics *big.Int
}

// NewDecimalFromRatio returns num/den rounded down to 18 digits. den must not
// be zero.
func NewDecimalFromRatio(num, den uint64) Decimal {
	v := new(big.Int).Mul(new(big.Int).SetUint64(num), decimalOne)
	v.Quo(v, new(big.Int).SetUint64(den))
	return Decimal{atomics: v}
}

// NewDecimalFromUint64 returns the integer x as Decimal.
func NewDecimalFromUint64(x uint64) Decimal {
	return NewDecimalFromRatio(x, 1)
}

// ParseDecimal parses decimal string like "0.68". More than 18 fractional
// digits and negative values are rejected.
func ParseDecimal(s string) (Decimal, error) {
	v, err := fixedn.FromString(s, DecimalPlaces)
	if err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	if v.Sign() < 0 {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, ErrNegative)
	}
	return Decimal{atomics: v}, nil
}

// MustParseDecimal is like ParseDecimal but panics on error. It is meant for
// constants and tests.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Atomics returns the value multiplied by 10^18.
func (d Decimal) Atomics() *big.Int {
	if d.atomics == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(d.atomics)
}

// IsZero checks whether the value is 0.
func (d Decimal) IsZero() bool {
	return d.atomics == nil || d.atomics.Sign() == 0
}

// Cmp compares d and x like big.Int.Cmp does.
func (d Decimal) Cmp(x Decimal) int {
	return d.Atomics().Cmp(x.Atomics())
}

// String implements fmt.Stringer.
func (d Decimal) String() string {
	return fixedn.ToString(d.Atomics(), DecimalPlaces)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := ParseDecimal(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MulUint64 returns floor(d * x).
func (d Decimal) MulUint64(x uint64) (uint64, error) {
	v := new(big.Int).Mul(d.Atomics(), new(big.Int).SetUint64(x))
	v.Quo(v, decimalOne)
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s * %d exceeds uint64", ErrOverflow, d, x)
	}
	return v.Uint64(), nil
}
