package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/io"
)

var (
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Int128 is a signed integer in the [-2^127, 2^127) range. Zero value is 0.
type Int128 struct {
	v *big.Int
}

// NewInt128 returns Int128 holding x.
func NewInt128(x int64) Int128 {
	return Int128{v: big.NewInt(x)}
}

// Int128FromBig checks that b fits into Int128 and returns it. b is copied.
func Int128FromBig(b *big.Int) (Int128, error) {
	if b.Cmp(maxInt128) > 0 || b.Cmp(minInt128) < 0 {
		return Int128{}, fmt.Errorf("%w: %s exceeds int128", ErrOverflow, b)
	}
	return Int128{v: new(big.Int).Set(b)}, nil
}

func (i Int128) big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return i.v
}

// Big returns a copy of the value as big.Int.
func (i Int128) Big() *big.Int {
	return new(big.Int).Set(i.big())
}

// Sign returns -1, 0 or 1 depending on the sign of the value.
func (i Int128) Sign() int {
	return i.big().Sign()
}

// Cmp compares i and x like big.Int.Cmp does.
func (i Int128) Cmp(x Int128) int {
	return i.big().Cmp(x.big())
}

// Add returns i + x.
func (i Int128) Add(x Int128) (Int128, error) {
	return Int128FromBig(new(big.Int).Add(i.big(), x.big()))
}

// Sub returns i - x.
func (i Int128) Sub(x Int128) (Int128, error) {
	return Int128FromBig(new(big.Int).Sub(i.big(), x.big()))
}

// Mul returns i * x.
func (i Int128) Mul(x Int128) (Int128, error) {
	return Int128FromBig(new(big.Int).Mul(i.big(), x.big()))
}

// Neg returns -i. Negating the minimal value overflows.
func (i Int128) Neg() (Int128, error) {
	return Int128FromBig(new(big.Int).Neg(i.big()))
}

// Shl returns i << n.
func (i Int128) Shl(n uint) (Int128, error) {
	return Int128FromBig(new(big.Int).Lsh(i.big(), n))
}

// Shr returns i >> n. The shift is arithmetic, negative values are rounded
// towards negative infinity.
func (i Int128) Shr(n uint) Int128 {
	return Int128{v: new(big.Int).Rsh(i.big(), n)}
}

// Uint128 converts the value into the unsigned type.
func (i Int128) Uint128() (Uint128, error) {
	return Uint128FromBig(i.big())
}

// String implements fmt.Stringer.
func (i Int128) String() string {
	return i.big().String()
}

// EncodeBinary implements io.Serializable.
func (i Int128) EncodeBinary(w *io.BinWriter) {
	w.WriteVarBytes(bigint.ToBytes(i.big()))
}

// DecodeBinary implements io.Serializable.
func (i *Int128) DecodeBinary(r *io.BinReader) {
	data := r.ReadVarBytes(bigint.MaxBytesLen)
	if r.Err != nil {
		return
	}
	v, err := Int128FromBig(bigint.FromBytes(data))
	if err != nil {
		r.Err = err
		return
	}
	*i = v
}
