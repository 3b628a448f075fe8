package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/io"
)

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxUint64  = new(big.Int).SetUint64(^uint64(0))
)

// Uint128 is an unsigned integer in the [0, 2^128) range. Zero value is 0.
// Values are immutable: every operation returns a new Uint128.
type Uint128 struct {
	v *big.Int
}

// NewUint128 returns Uint128 holding x.
func NewUint128(x uint64) Uint128 {
	return Uint128{v: new(big.Int).SetUint64(x)}
}

// MaxUint128 returns the largest Uint128 value.
func MaxUint128() Uint128 {
	return Uint128{v: new(big.Int).Set(maxUint128)}
}

// Uint128FromBig checks that b fits into Uint128 and returns it. b is copied.
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 {
		return Uint128{}, fmt.Errorf("%w: %s", ErrNegative, b)
	}
	if b.Cmp(maxUint128) > 0 {
		return Uint128{}, fmt.Errorf("%w: %s exceeds uint128", ErrOverflow, b)
	}
	return Uint128{v: new(big.Int).Set(b)}, nil
}

func (u Uint128) big() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return u.v
}

// Big returns a copy of the value as big.Int.
func (u Uint128) Big() *big.Int {
	return new(big.Int).Set(u.big())
}

// IsZero checks whether the value is 0.
func (u Uint128) IsZero() bool {
	return u.v == nil || u.v.Sign() == 0
}

// Cmp compares u and x like big.Int.Cmp does.
func (u Uint128) Cmp(x Uint128) int {
	return u.big().Cmp(x.big())
}

// Add returns u + x.
func (u Uint128) Add(x Uint128) (Uint128, error) {
	return Uint128FromBig(new(big.Int).Add(u.big(), x.big()))
}

// Sub returns u - x. It fails with ErrNegative if x > u.
func (u Uint128) Sub(x Uint128) (Uint128, error) {
	return Uint128FromBig(new(big.Int).Sub(u.big(), x.big()))
}

// Mul returns u * x.
func (u Uint128) Mul(x Uint128) (Uint128, error) {
	return Uint128FromBig(new(big.Int).Mul(u.big(), x.big()))
}

// Div returns u / x rounded towards zero.
func (u Uint128) Div(x Uint128) (Uint128, error) {
	if x.IsZero() {
		return Uint128{}, ErrDivisionByZero
	}
	return Uint128{v: new(big.Int).Quo(u.big(), x.big())}, nil
}

// Rem returns u % x.
func (u Uint128) Rem(x Uint128) (Uint128, error) {
	if x.IsZero() {
		return Uint128{}, ErrDivisionByZero
	}
	return Uint128{v: new(big.Int).Rem(u.big(), x.big())}, nil
}

// Shl returns u << n. Bits shifted out of the 128-bit range cause ErrOverflow.
func (u Uint128) Shl(n uint) (Uint128, error) {
	return Uint128FromBig(new(big.Int).Lsh(u.big(), n))
}

// Shr returns u >> n.
func (u Uint128) Shr(n uint) Uint128 {
	return Uint128{v: new(big.Int).Rsh(u.big(), n)}
}

// Uint64 converts the value into uint64.
func (u Uint128) Uint64() (uint64, error) {
	if u.big().Cmp(maxUint64) > 0 {
		return 0, fmt.Errorf("%w: %s exceeds uint64", ErrOverflow, u)
	}
	return u.big().Uint64(), nil
}

// Int128 converts the value into the signed type.
func (u Uint128) Int128() (Int128, error) {
	return Int128FromBig(u.big())
}

// String implements fmt.Stringer.
func (u Uint128) String() string {
	return u.big().String()
}

// EncodeBinary implements io.Serializable.
func (u Uint128) EncodeBinary(w *io.BinWriter) {
	w.WriteVarBytes(bigint.ToBytes(u.big()))
}

// DecodeBinary implements io.Serializable.
func (u *Uint128) DecodeBinary(r *io.BinReader) {
	data := r.ReadVarBytes(bigint.MaxBytesLen)
	if r.Err != nil {
		return
	}
	v, err := Uint128FromBig(bigint.FromBytes(data))
	if err != nil {
		r.Err = err
		return
	}
	*u = v
}
