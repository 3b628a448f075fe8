package main

import (
	"testing"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/confio/poe-contracts-sub001/mixer"
	"github.com/stretchr/testify/require"
)

type scoreFunc func(stake, engagement uint64) (uint64, error)

func (f scoreFunc) Score(stake, engagement uint64) (uint64, error) {
	return f(stake, engagement)
}

func TestSweepStake(t *testing.T) {
	t.Run("sigmoid", func(t *testing.T) {
		fn, err := mixer.NewSigmoid(1000, fixedpoint.MustParseDecimal("0.68"), fixedpoint.MustParseDecimal("0.00003"))
		require.NoError(t, err)

		res, err := sweepStake(fn, 1000, true, 5000, 1, 200_001, 10_000)
		require.NoError(t, err)
		require.Empty(t, res.Reason)
		require.EqualValues(t, 21, res.Checked)
	})

	t.Run("unbounded", func(t *testing.T) {
		fn := scoreFunc(func(stake, _ uint64) (uint64, error) { return stake, nil })

		res, err := sweepStake(fn, 50, true, 1, 0, 100, 10)
		require.NoError(t, err)
		require.EqualValues(t, 60, res.Stake)
		require.Contains(t, res.Reason, "above")

		res, err = sweepStake(fn, 50, false, 1, 0, 100, 10)
		require.NoError(t, err)
		require.Empty(t, res.Reason)
		require.EqualValues(t, 11, res.Checked)
	})

	t.Run("decreasing", func(t *testing.T) {
		fn := scoreFunc(func(stake, _ uint64) (uint64, error) { return 100 - stake, nil })

		res, err := sweepStake(fn, 100, true, 1, 0, 50, 5)
		require.NoError(t, err)
		require.EqualValues(t, 5, res.Stake)
		require.Contains(t, res.Reason, "decreased")
	})

	t.Run("zero step", func(t *testing.T) {
		_, err := sweepStake(mixer.GeometricMean{}, 0, false, 1, 0, 10, 0)
		require.Error(t, err)
	})
}
