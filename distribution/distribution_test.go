package distribution

import (
	"testing"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func amount(x uint64) fixedpoint.Uint128 {
	return fixedpoint.NewUint128(x)
}

func requireAmount(tb testing.TB, expected uint64, actual fixedpoint.Uint128) {
	v, err := actual.Uint64()
	require.NoError(tb, err)
	require.Equal(tb, expected, v)
}

func withdrawable(tb testing.TB, d *Distribution, weight uint64, adj WithdrawAdjustment) uint64 {
	v, err := d.WithdrawableFunds(weight, adj)
	require.NoError(tb, err)
	res, err := v.Uint64()
	require.NoError(tb, err)
	return res
}

func TestDistributeFunds(t *testing.T) {
	d := New("utgd")

	require.NoError(t, d.DistributeFunds(amount(100), 3))
	requireAmount(t, 143165576533, d.PointsPerWeight)
	require.EqualValues(t, 1, d.PointsLeftover)
	requireAmount(t, 100, d.DistributedTotal)
	requireAmount(t, 100, d.WithdrawableTotal)

	require.EqualValues(t, 33, withdrawable(t, &d, 1, WithdrawAdjustment{}))
	require.EqualValues(t, 66, withdrawable(t, &d, 2, WithdrawAdjustment{}))

	// leftover is absorbed by the next distribution
	require.NoError(t, d.DistributeFunds(amount(2), 3))
	require.Zero(t, d.PointsLeftover)
	require.EqualValues(t, 34, withdrawable(t, &d, 1, WithdrawAdjustment{}))
	require.EqualValues(t, 68, withdrawable(t, &d, 2, WithdrawAdjustment{}))
	requireAmount(t, 102, d.DistributedTotal)

	t.Run("zero amount", func(t *testing.T) {
		before := d
		require.NoError(t, d.DistributeFunds(fixedpoint.Uint128{}, 3))
		require.Equal(t, before, d)

		require.ErrorIs(t, d.DistributeFunds(fixedpoint.Uint128{}, 0), ErrNoMembersToDistributeTo)
		require.Equal(t, before, d)
	})

	t.Run("no members", func(t *testing.T) {
		before := d
		require.ErrorIs(t, d.DistributeFunds(amount(10), 0), ErrNoMembersToDistributeTo)
		require.Equal(t, before, d)
	})

	t.Run("overflow", func(t *testing.T) {
		before := d
		require.ErrorIs(t, d.DistributeFunds(fixedpoint.MaxUint128(), 1), ErrRewardOverflow)
		require.Equal(t, before, d)
	})
}

func TestWithdraw(t *testing.T) {
	owner := util.Uint160{1, 2, 3}
	d := New("utgd")
	adj := NewWithdrawAdjustment(owner)
	require.Equal(t, owner, adj.Delegated)

	require.NoError(t, d.DistributeFunds(amount(1000), 4))

	paid, err := d.Withdraw(3, &adj)
	require.NoError(t, err)
	requireAmount(t, 750, paid)
	requireAmount(t, 750, adj.WithdrawnFunds)
	requireAmount(t, 250, d.WithdrawableTotal)
	requireAmount(t, 1000, d.DistributedTotal)

	paid, err = d.Withdraw(3, &adj)
	require.NoError(t, err)
	require.True(t, paid.IsZero())
	requireAmount(t, 750, adj.WithdrawnFunds)

	t.Run("zero weight", func(t *testing.T) {
		empty := NewWithdrawAdjustment(util.Uint160{9})
		require.Zero(t, withdrawable(t, &d, 0, empty))
		paid, err := d.Withdraw(0, &empty)
		require.NoError(t, err)
		require.True(t, paid.IsZero())
	})

	t.Run("broken state", func(t *testing.T) {
		broken := WithdrawAdjustment{WithdrawnFunds: amount(5000)}
		before := d
		_, err := d.Withdraw(3, &broken)
		require.ErrorIs(t, err, ErrBrokenState)
		require.Equal(t, before, d)
		requireAmount(t, 5000, broken.WithdrawnFunds)

		negative, err := fixedpoint.NewInt128(-1).Shl(40)
		require.NoError(t, err)
		_, err = d.WithdrawableFunds(0, WithdrawAdjustment{PointsCorrection: negative})
		require.ErrorIs(t, err, ErrBrokenState)
	})
}

func TestUpdateWeight(t *testing.T) {
	t.Run("new member does not get past rewards", func(t *testing.T) {
		d := New("utgd")
		var a, b WithdrawAdjustment

		require.NoError(t, d.DistributeFunds(amount(100), 1))
		require.NoError(t, d.UpdateWeight(0, 1, &b))
		require.Zero(t, withdrawable(t, &d, 1, b))

		require.NoError(t, d.DistributeFunds(amount(10), 2))
		require.EqualValues(t, 105, withdrawable(t, &d, 1, a))
		require.EqualValues(t, 5, withdrawable(t, &d, 1, b))
	})

	t.Run("removed member keeps earned rewards", func(t *testing.T) {
		d := New("utgd")
		var a WithdrawAdjustment

		require.NoError(t, d.DistributeFunds(amount(100), 2))
		require.NoError(t, d.UpdateWeight(2, 0, &a))
		require.EqualValues(t, 100, withdrawable(t, &d, 0, a))

		require.NoError(t, d.DistributeFunds(amount(100), 7))
		require.EqualValues(t, 100, withdrawable(t, &d, 0, a))
	})

	t.Run("correction sign", func(t *testing.T) {
		d := New("utgd")
		require.NoError(t, d.DistributeFunds(amount(1), 1))

		var adj WithdrawAdjustment
		require.NoError(t, d.UpdateWeight(0, 3, &adj))
		require.Equal(t, -1, adj.PointsCorrection.Sign())
		require.NoError(t, d.UpdateWeight(3, 0, &adj))
		require.Zero(t, adj.PointsCorrection.Sign())
	})
}

func TestUndistributedFunds(t *testing.T) {
	d := New("utgd")
	require.NoError(t, d.DistributeFunds(amount(102), 3))

	v, err := d.UndistributedFunds(amount(150))
	require.NoError(t, err)
	requireAmount(t, 48, v)

	_, err = d.UndistributedFunds(amount(50))
	require.ErrorIs(t, err, ErrBrokenState)
}

func TestBinary(t *testing.T) {
	d := New("utgd")
	require.NoError(t, d.DistributeFunds(amount(100), 3))

	adj := NewWithdrawAdjustment(util.Uint160{0xAA})
	require.NoError(t, d.UpdateWeight(0, 5, &adj))

	w := io.NewBufBinWriter()
	d.EncodeBinary(w.BinWriter)
	adj.EncodeBinary(w.BinWriter)
	require.NoError(t, w.Err)

	var (
		d2   Distribution
		adj2 WithdrawAdjustment
	)
	r := io.NewBinReaderFromBuf(w.Bytes())
	d2.DecodeBinary(r)
	adj2.DecodeBinary(r)
	require.NoError(t, r.Err)

	require.Equal(t, d.Denom, d2.Denom)
	require.Equal(t, 0, d.PointsPerWeight.Cmp(d2.PointsPerWeight))
	require.Equal(t, d.PointsLeftover, d2.PointsLeftover)
	require.Equal(t, 0, d.DistributedTotal.Cmp(d2.DistributedTotal))
	require.Equal(t, 0, d.WithdrawableTotal.Cmp(d2.WithdrawableTotal))
	require.Equal(t, 0, adj.PointsCorrection.Cmp(adj2.PointsCorrection))
	require.Equal(t, 0, adj.WithdrawnFunds.Cmp(adj2.WithdrawnFunds))
	require.Equal(t, adj.Delegated, adj2.Delegated)
}
