package fixedpoint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt128Bounds(t *testing.T) {
	max, err := Int128FromBig(maxInt128)
	require.NoError(t, err)
	min, err := Int128FromBig(minInt128)
	require.NoError(t, err)

	_, err = max.Add(NewInt128(1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = min.Sub(NewInt128(1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = min.Neg()
	require.ErrorIs(t, err, ErrOverflow)

	_, err = max.Mul(NewInt128(-2))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = NewInt128(1).Shl(127)
	require.ErrorIs(t, err, ErrOverflow)

	v, err := NewInt128(-1).Shl(127)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(min))

	_, err = Int128FromBig(new(big.Int).Add(maxInt128, big.NewInt(1)))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestInt128ArithmeticShift(t *testing.T) {
	for _, tc := range []struct {
		in, out int64
	}{
		{in: 8, out: 2},
		{in: 7, out: 1},
		{in: -8, out: -2},
		{in: -7, out: -2},
		{in: -1, out: -1},
	} {
		require.Equal(t, tc.out, NewInt128(tc.in).Shr(2).Big().Int64(), "%d >> 2", tc.in)
	}
}

func TestInt128ToUnsigned(t *testing.T) {
	u, err := NewInt128(10).Uint128()
	require.NoError(t, err)
	require.Equal(t, "10", u.String())

	_, err = NewInt128(-10).Uint128()
	require.ErrorIs(t, err, ErrNegative)

	var z Int128
	require.Zero(t, z.Sign())
	n, err := z.Sub(NewInt128(3))
	require.NoError(t, err)
	require.Equal(t, -1, n.Sign())
}
