package engagement

import (
	"sort"
	"time"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/confio/poe-contracts-sub001/distribution"
	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	defaultListLimit = 10
	maxListLimit     = 30
)

// HalflifeInfo describes the decay schedule. Zero NextHalflife means the
// decay is disabled.
type HalflifeInfo struct {
	LastHalflife time.Time
	Halflife     time.Duration
	NextHalflife time.Time
}

// Admin returns the admin address or nil if there is no admin.
func (c *Contract) Admin() (*util.Uint160, error) {
	return c.view().admin()
}

// Member returns the member weight. The second value is false for
// non-members.
func (c *Contract) Member(addr util.Uint160) (uint64, bool, error) {
	return c.view().member(addr)
}

// TotalWeight returns the sum of member weights.
func (c *Contract) TotalWeight() (uint64, error) {
	return c.view().total()
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// ListMembers returns members ordered by address, starting after startAfter
// if it is set. Non-positive limit means the default of 10, limit is capped
// at 30.
func (c *Contract) ListMembers(startAfter *util.Uint160, limit int) ([]common.Member, error) {
	members, err := c.view().members()
	if err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	res := make([]common.Member, 0, limit)
	for _, m := range members {
		if len(res) == limit {
			break
		}
		if startAfter != nil && !addressLess(*startAfter, m.Addr) {
			continue
		}
		res = append(res, m)
	}
	return res, nil
}

// byWeightLess orders members by weight descending, then by address.
func byWeightLess(a, b common.Member) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	return addressLess(a.Addr, b.Addr)
}

// ListMembersByWeight returns members ordered by weight from the heaviest,
// starting after startAfter if it is set. Limit is treated like in
// ListMembers.
func (c *Contract) ListMembersByWeight(startAfter *common.Member, limit int) ([]common.Member, error) {
	members, err := c.view().members()
	if err != nil {
		return nil, err
	}
	sort.Slice(members, func(i, j int) bool {
		return byWeightLess(members[i], members[j])
	})

	limit = clampLimit(limit)
	res := make([]common.Member, 0, limit)
	for _, m := range members {
		if len(res) == limit {
			break
		}
		if startAfter != nil && !byWeightLess(*startAfter, m) {
			continue
		}
		res = append(res, m)
	}
	return res, nil
}

// WithdrawableFunds returns the amount owner can withdraw now.
func (c *Contract) WithdrawableFunds(owner util.Uint160) (fixedpoint.Uint128, error) {
	s := c.view()
	d, err := s.distribution()
	if err != nil {
		return fixedpoint.Uint128{}, err
	}
	adj, err := s.adjustment(owner)
	if err != nil {
		return fixedpoint.Uint128{}, err
	}
	weight, _, err := s.member(owner)
	if err != nil {
		return fixedpoint.Uint128{}, err
	}
	return d.WithdrawableFunds(weight, adj)
}

// DistributedFunds returns the total of all distributed funds.
func (c *Contract) DistributedFunds() (fixedpoint.Uint128, error) {
	d, err := c.view().distribution()
	return d.DistributedTotal, err
}

// UndistributedFunds returns the part of balance waiting for distribution.
func (c *Contract) UndistributedFunds(balance fixedpoint.Uint128) (fixedpoint.Uint128, error) {
	d, err := c.view().distribution()
	if err != nil {
		return fixedpoint.Uint128{}, err
	}
	return d.UndistributedFunds(balance)
}

// Delegated returns the account allowed to withdraw rewards of owner.
func (c *Contract) Delegated(owner util.Uint160) (util.Uint160, error) {
	adj, err := c.view().adjustment(owner)
	return adj.Delegated, err
}

// Halflife returns the decay schedule.
func (c *Contract) Halflife() (HalflifeInfo, error) {
	h, err := c.view().halflife()
	if err != nil {
		return HalflifeInfo{}, err
	}
	info := HalflifeInfo{LastHalflife: h.LastApplied, Halflife: h.Period}
	if h.Enabled() {
		info.NextHalflife = h.Next()
	}
	return info, nil
}

// DistributionData returns the raw ledger record.
func (c *Contract) DistributionData() (distribution.Distribution, error) {
	return c.view().distribution()
}

// WithdrawAdjustmentData returns the raw ledger record of addr.
func (c *Contract) WithdrawAdjustmentData(addr util.Uint160) (distribution.WithdrawAdjustment, error) {
	return c.view().adjustment(addr)
}
