package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecimal(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		d, err := ParseDecimal("0.68")
		require.NoError(t, err)
		require.Equal(t, "0.68", d.String())
		require.Equal(t, 0, d.Cmp(NewDecimalFromRatio(68, 100)))

		_, err = ParseDecimal("-1")
		require.ErrorIs(t, err, ErrNegative)

		_, err = ParseDecimal("abc")
		require.Error(t, err)
	})

	t.Run("text", func(t *testing.T) {
		var d Decimal
		require.NoError(t, d.UnmarshalText([]byte("0.00003")))
		require.Equal(t, "30000000000000", d.Atomics().String())

		txt, err := d.MarshalText()
		require.NoError(t, err)
		require.Equal(t, "0.00003", string(txt))
	})

	t.Run("integers", func(t *testing.T) {
		require.Equal(t, "5", NewDecimalFromUint64(5).String())
		require.True(t, Decimal{}.IsZero())
		require.Equal(t, -1, Decimal{}.Cmp(NewDecimalFromRatio(1, 3)))
	})

	t.Run("multiply", func(t *testing.T) {
		v, err := MustParseDecimal("0.5").MulUint64(7)
		require.NoError(t, err)
		require.EqualValues(t, 3, v)

		v, err = MustParseDecimal("1").MulUint64(^uint64(0))
		require.NoError(t, err)
		require.Equal(t, ^uint64(0), v)

		_, err = MustParseDecimal("2").MulUint64(^uint64(0))
		require.ErrorIs(t, err, ErrOverflow)
	})
}
