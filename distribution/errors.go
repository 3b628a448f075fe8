package distribution

import "errors"

var (
	// ErrNoMembersToDistributeTo is returned when funds are distributed while
	// the total weight is zero.
	ErrNoMembersToDistributeTo = errors.New("no members to distribute tokens to")
	// ErrBrokenState is returned when the ledger invariants do not hold, e.g.
	// when a computed entitlement is negative.
	ErrBrokenState = errors.New("broken distribution state")
	// ErrRewardOverflow is returned when a reward amount does not fit into
	// the ledger types.
	ErrRewardOverflow = errors.New("reward overflow")
	// ErrWeightOverflow is returned when weight math does not fit into the
	// ledger types.
	ErrWeightOverflow = errors.New("weight overflow")
)
