package distribution

import (
	"fmt"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// PointsShift is the number of fractional bits of the points-per-weight value.
const PointsShift = 32

// Distribution is the global ledger of a single denom.
type Distribution struct {
	// Denom of the distributed tokens.
	Denom string
	// PointsPerWeight is the accumulator scaled by 2^PointsShift.
	PointsPerWeight fixedpoint.Uint128
	// PointsLeftover is the remainder of the last division, always less than
	// the total weight it was computed with.
	PointsLeftover uint64
	// DistributedTotal is the amount of all distributed funds.
	DistributedTotal fixedpoint.Uint128
	// WithdrawableTotal is the amount distributed but not yet withdrawn.
	WithdrawableTotal fixedpoint.Uint128
}

// WithdrawAdjustment is a per-member ledger record.
type WithdrawAdjustment struct {
	// PointsCorrection compensates weight changes, scaled by 2^PointsShift.
	PointsCorrection fixedpoint.Int128
	// WithdrawnFunds is the amount already paid out to the member.
	WithdrawnFunds fixedpoint.Uint128
	// Delegated is the account allowed to withdraw on behalf of the member.
	Delegated util.Uint160
}

// New returns empty ledger for the given denom.
func New(denom string) Distribution {
	return Distribution{Denom: denom}
}

// NewWithdrawAdjustment returns empty adjustment delegated to the owner itself.
func NewWithdrawAdjustment(owner util.Uint160) WithdrawAdjustment {
	return WithdrawAdjustment{Delegated: owner}
}

// DistributeFunds splits amount between totalWeight units of weight. Zero
// total weight is an error even for zero amount, otherwise zero amount is a
// no-op.
func (d *Distribution) DistributeFunds(amount fixedpoint.Uint128, totalWeight uint64) error {
	if totalWeight == 0 {
		return ErrNoMembersToDistributeTo
	}
	if amount.IsZero() {
		return nil
	}

	points, err := amount.Shl(PointsShift)
	if err != nil {
		return fmt.Errorf("%w: points of %s: %v", ErrRewardOverflow, amount, err)
	}
	points, err = points.Add(fixedpoint.NewUint128(d.PointsLeftover))
	if err != nil {
		return fmt.Errorf("%w: leftover: %v", ErrRewardOverflow, err)
	}

	total := fixedpoint.NewUint128(totalWeight)
	perWeight, err := points.Div(total)
	if err != nil {
		return err
	}
	leftover, err := points.Rem(total)
	if err != nil {
		return err
	}
	leftover64, err := leftover.Uint64()
	if err != nil {
		return fmt.Errorf("%w: leftover: %v", ErrBrokenState, err)
	}

	ppw, err := d.PointsPerWeight.Add(perWeight)
	if err != nil {
		return fmt.Errorf("%w: points per weight: %v", ErrRewardOverflow, err)
	}
	distributed, err := d.DistributedTotal.Add(amount)
	if err != nil {
		return fmt.Errorf("%w: distributed total: %v", ErrRewardOverflow, err)
	}
	withdrawable, err := d.WithdrawableTotal.Add(amount)
	if err != nil {
		return fmt.Errorf("%w: withdrawable total: %v", ErrRewardOverflow, err)
	}

	d.PointsPerWeight = ppw
	d.PointsLeftover = leftover64
	d.DistributedTotal = distributed
	d.WithdrawableTotal = withdrawable
	return nil
}

// WithdrawableFunds returns the amount the member with the given weight can
// withdraw right now.
func (d *Distribution) WithdrawableFunds(weight uint64, adj WithdrawAdjustment) (fixedpoint.Uint128, error) {
	points, err := d.PointsPerWeight.Mul(fixedpoint.NewUint128(weight))
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: points of weight %d: %v", ErrRewardOverflow, weight, err)
	}
	signed, err := points.Int128()
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: points of weight %d: %v", ErrRewardOverflow, weight, err)
	}
	signed, err = signed.Add(adj.PointsCorrection)
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: correction: %v", ErrRewardOverflow, err)
	}
	total, err := signed.Shr(PointsShift).Uint128()
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: negative entitlement %s", ErrBrokenState, signed.Shr(PointsShift))
	}
	amount, err := total.Sub(adj.WithdrawnFunds)
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: entitlement %s below withdrawn %s", ErrBrokenState, total, adj.WithdrawnFunds)
	}
	return amount, nil
}

// Withdraw settles the whole entitlement of the member and returns the paid
// amount. If nothing is pending, zero is returned and nothing changes.
func (d *Distribution) Withdraw(weight uint64, adj *WithdrawAdjustment) (fixedpoint.Uint128, error) {
	amount, err := d.WithdrawableFunds(weight, *adj)
	if err != nil {
		return fixedpoint.Uint128{}, err
	}
	if amount.IsZero() {
		return amount, nil
	}

	withdrawn, err := adj.WithdrawnFunds.Add(amount)
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: withdrawn funds: %v", ErrRewardOverflow, err)
	}
	withdrawable, err := d.WithdrawableTotal.Sub(amount)
	if err != nil {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: withdrawable total %s below %s", ErrBrokenState, d.WithdrawableTotal, amount)
	}

	adj.WithdrawnFunds = withdrawn
	d.WithdrawableTotal = withdrawable
	return amount, nil
}

// UpdateWeight records the member weight change from oldWeight to newWeight.
// It must be called in the same state transition as the change itself.
func (d *Distribution) UpdateWeight(oldWeight, newWeight uint64, adj *WithdrawAdjustment) error {
	diff, err := fixedpoint.NewUint128(newWeight).Int128()
	if err != nil {
		return err
	}
	old, err := fixedpoint.NewUint128(oldWeight).Int128()
	if err != nil {
		return err
	}
	diff, err = diff.Sub(old)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWeightOverflow, err)
	}
	return d.ApplyPointsCorrection(diff, adj)
}

// ApplyPointsCorrection subtracts PointsPerWeight*diff from the member
// correction. diff is the signed weight change.
func (d *Distribution) ApplyPointsCorrection(diff fixedpoint.Int128, adj *WithdrawAdjustment) error {
	ppw, err := d.PointsPerWeight.Int128()
	if err != nil {
		return fmt.Errorf("%w: points per weight: %v", ErrRewardOverflow, err)
	}
	delta, err := ppw.Mul(diff)
	if err != nil {
		return fmt.Errorf("%w: correction of %s: %v", ErrWeightOverflow, diff, err)
	}
	correction, err := adj.PointsCorrection.Sub(delta)
	if err != nil {
		return fmt.Errorf("%w: correction: %v", ErrWeightOverflow, err)
	}
	adj.PointsCorrection = correction
	return nil
}

// UndistributedFunds returns the part of balance which is neither distributed
// nor reserved for withdrawals.
func (d *Distribution) UndistributedFunds(balance fixedpoint.Uint128) (fixedpoint.Uint128, error) {
	if balance.Cmp(d.WithdrawableTotal) < 0 {
		return fixedpoint.Uint128{}, fmt.Errorf("%w: balance %s below withdrawable total %s", ErrBrokenState, balance, d.WithdrawableTotal)
	}
	return balance.Sub(d.WithdrawableTotal)
}
