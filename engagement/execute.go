package engagement

import (
	"math/big"
	"strconv"
	"time"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/confio/poe-contracts-sub001/distribution"
	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/confio/poe-contracts-sub001/internal/metrics"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// UpdateAdmin sets new admin. Nil removes the admin for good.
func (c *Contract) UpdateAdmin(sender util.Uint160, admin *util.Uint160) (Response, error) {
	return c.exec("update_admin", func(s state, resp *Response) error {
		if err := c.checkAdmin(s, sender); err != nil {
			return err
		}
		if err := s.setAdmin(admin); err != nil {
			return err
		}

		newAdmin := ""
		if admin != nil {
			newAdmin = address.Uint160ToString(*admin)
		}
		resp.Events = append(resp.Events, common.NewEvent("update_admin", "admin", newAdmin))
		return nil
	})
}

// UpdateMembers adds or changes members from add and then removes members
// listed in remove. Removing an account which is not a member is a no-op.
func (c *Contract) UpdateMembers(sender util.Uint160, add []common.Member, remove []util.Uint160) (Response, error) {
	return c.exec("update_members", func(s state, resp *Response) error {
		if err := c.checkAdmin(s, sender); err != nil {
			return err
		}
		return c.updateMembers(s, resp, add, remove)
	})
}

// SudoUpdateMember sets the member weight. It is a privileged call of the
// host and has no sender checks.
func (c *Contract) SudoUpdateMember(m common.Member) (Response, error) {
	return c.exec("sudo_update_member", func(s state, resp *Response) error {
		return c.updateMembers(s, resp, []common.Member{m}, nil)
	})
}

func (c *Contract) updateMembers(s state, resp *Response, add []common.Member, remove []util.Uint160) error {
	d, err := s.distribution()
	if err != nil {
		return err
	}
	total, err := s.total()
	if err != nil {
		return err
	}

	for _, m := range add {
		diff, err := s.setWeight(&d, &total, m.Addr, common.Weight(m.Weight))
		if err != nil {
			return err
		}
		resp.Diffs = append(resp.Diffs, diff)
	}

	var removed int
	for _, addr := range remove {
		if _, ok, err := s.member(addr); err != nil {
			return err
		} else if !ok {
			continue
		}
		diff, err := s.setWeight(&d, &total, addr, nil)
		if err != nil {
			return err
		}
		resp.Diffs = append(resp.Diffs, diff)
		removed++
	}

	if err := s.setTotal(total); err != nil {
		return err
	}

	resp.Events = append(resp.Events, common.NewEvent("update_members",
		"added", strconv.Itoa(len(add)),
		"removed", strconv.Itoa(removed)))

	c.log.Debug("members updated",
		zap.Int("added", len(add)), zap.Int("removed", removed), zap.Uint64("total", total))
	return nil
}

// AddPoints increases the member weight by points. Non-members become
// members.
func (c *Contract) AddPoints(sender, addr util.Uint160, points uint64) (Response, error) {
	return c.exec("add_points", func(s state, resp *Response) error {
		if err := c.checkAdmin(s, sender); err != nil {
			return err
		}

		old, _, err := s.member(addr)
		if err != nil {
			return err
		}
		weight := old + points
		if weight < old {
			return distribution.ErrWeightOverflow
		}
		if err := c.updateMembers(s, resp, []common.Member{{Addr: addr, Weight: weight}}, nil); err != nil {
			return err
		}
		resp.Events = append(resp.Events, common.NewEvent("add_points",
			"addr", address.Uint160ToString(addr),
			"points", strconv.FormatUint(points, 10)))
		return nil
	})
}

// DistributeFunds distributes all funds of the contract balance which are not
// reserved for withdrawals yet. balance is the current contract balance in
// the reward denom.
func (c *Contract) DistributeFunds(sender util.Uint160, balance fixedpoint.Uint128) (Response, error) {
	var (
		denom  string
		amount fixedpoint.Uint128
	)
	resp, err := c.exec("distribute_funds", func(s state, resp *Response) error {
		total, err := s.total()
		if err != nil {
			return err
		}
		if total == 0 {
			return distribution.ErrNoMembersToDistributeTo
		}
		d, err := s.distribution()
		if err != nil {
			return err
		}
		amount, err = d.UndistributedFunds(balance)
		if err != nil {
			return err
		}
		if amount.IsZero() {
			return nil
		}
		if err := d.DistributeFunds(amount, total); err != nil {
			return err
		}
		if err := s.setDistribution(&d); err != nil {
			return err
		}

		resp.Events = append(resp.Events, common.NewEvent("distribute_funds",
			"sender", address.Uint160ToString(sender),
			"amount", amount.String()))

		denom = d.Denom
		c.log.Debug("funds distributed",
			addressField("sender", sender), zap.Stringer("amount", amount), zap.Uint64("total weight", total))
		return nil
	})
	if err == nil && !amount.IsZero() {
		metrics.DistributedFundsTotal.WithLabelValues(denom).Add(toFloat(amount))
	}
	return resp, err
}

// WithdrawFunds withdraws all rewards of owner to receiver. Nil owner means
// the sender, nil receiver means the sender. Sender must be either the owner
// or its delegate. Withdrawing nothing is not an error.
func (c *Contract) WithdrawFunds(sender util.Uint160, owner, receiver *util.Uint160) (Response, error) {
	resp, err := c.exec("withdraw_funds", func(s state, resp *Response) error {
		o := sender
		if owner != nil {
			o = *owner
		}
		r := sender
		if receiver != nil {
			r = *receiver
		}

		adj, err := s.adjustment(o)
		if err != nil {
			return err
		}
		if err := common.CheckOwnerWitness(o, adj.Delegated, sender); err != nil {
			return err
		}

		d, err := s.distribution()
		if err != nil {
			return err
		}
		weight, _, err := s.member(o)
		if err != nil {
			return err
		}

		amount, err := d.Withdraw(weight, &adj)
		if err != nil {
			return err
		}
		if err := s.setAdjustment(o, &adj); err != nil {
			return err
		}
		if err := s.setDistribution(&d); err != nil {
			return err
		}

		if !amount.IsZero() {
			resp.Transfers = append(resp.Transfers, common.Transfer{To: r, Denom: d.Denom, Amount: amount})
		}
		resp.Events = append(resp.Events, common.NewEvent("withdraw_funds",
			"owner", address.Uint160ToString(o),
			"receiver", address.Uint160ToString(r),
			"amount", amount.String()))

		c.log.Debug("funds withdrawn",
			addressField("owner", o), addressField("receiver", r), zap.Stringer("amount", amount))
		return nil
	})
	for _, t := range resp.Transfers {
		metrics.WithdrawnFundsTotal.WithLabelValues(t.Denom).Add(toFloat(t.Amount))
	}
	return resp, err
}

// DelegateWithdrawal allows delegated to withdraw rewards of the sender.
// Delegating to the sender itself revokes the delegation.
func (c *Contract) DelegateWithdrawal(sender, delegated util.Uint160) (Response, error) {
	return c.exec("delegate_withdrawal", func(s state, resp *Response) error {
		adj, err := s.adjustment(sender)
		if err != nil {
			return err
		}
		adj.Delegated = delegated
		if err := s.setAdjustment(sender, &adj); err != nil {
			return err
		}

		resp.Events = append(resp.Events, common.NewEvent("delegate_withdrawal",
			"owner", address.Uint160ToString(sender),
			"delegated", address.Uint160ToString(delegated)))
		return nil
	})
}

// Slash reduces the member weight by the given portion of it. Slashing a
// non-member is a no-op.
func (c *Contract) Slash(sender, addr util.Uint160, portion fixedpoint.Decimal) (Response, error) {
	return c.exec("slash", func(s state, resp *Response) error {
		if err := c.checkAdmin(s, sender); err != nil {
			return err
		}
		if portion.Cmp(fixedpoint.NewDecimalFromUint64(1)) > 0 {
			return ErrInvalidPortion
		}

		weight, ok, err := s.member(addr)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		slash, err := portion.MulUint64(weight)
		if err != nil {
			return err
		}

		d, err := s.distribution()
		if err != nil {
			return err
		}
		total, err := s.total()
		if err != nil {
			return err
		}
		diff, err := s.setWeight(&d, &total, addr, common.Weight(weight-slash))
		if err != nil {
			return err
		}
		if err := s.setTotal(total); err != nil {
			return err
		}

		resp.Diffs = append(resp.Diffs, diff)
		resp.Events = append(resp.Events, common.NewEvent("slash",
			"addr", address.Uint160ToString(addr),
			"portion", portion.String(),
			"weight", strconv.FormatUint(slash, 10)))

		c.log.Info("member slashed",
			addressField("addr", addr), zap.Stringer("portion", portion), zap.Uint64("slashed weight", slash))
		return nil
	})
}

// EndBlock applies half-life decay if it is due at now: every member with
// weight above 1 loses half of it, rounded up. Members keep their rewards.
func (c *Contract) EndBlock(now time.Time) (Response, error) {
	var applied bool
	resp, err := c.exec("end_block", func(s state, resp *Response) error {
		h, err := s.halflife()
		if err != nil {
			return err
		}
		if !h.ShouldApply(now) {
			return nil
		}

		d, err := s.distribution()
		if err != nil {
			return err
		}
		total, err := s.total()
		if err != nil {
			return err
		}
		members, err := s.members()
		if err != nil {
			return err
		}

		var reduction uint64
		for _, m := range members {
			reduced := distribution.ReducedWeight(m.Weight)
			if reduced == m.Weight {
				continue
			}
			diff, err := s.setWeight(&d, &total, m.Addr, common.Weight(reduced))
			if err != nil {
				return err
			}
			resp.Diffs = append(resp.Diffs, diff)
			reduction += m.Weight - reduced
		}
		if err := s.setTotal(total); err != nil {
			return err
		}

		h.Advance(now)
		if err := s.setHalflife(&h); err != nil {
			return err
		}

		resp.Events = append(resp.Events, common.NewEvent("halflife",
			"reduction", strconv.FormatUint(reduction, 10),
			"members", strconv.Itoa(len(resp.Diffs))))

		applied = true
		c.log.Info("half-life applied",
			zap.Uint64("reduction", reduction), zap.Int("members", len(resp.Diffs)), zap.Time("next", h.Next()))
		return nil
	})
	if err == nil && applied {
		metrics.HalflifeAppliedTotal.Inc()
	}
	return resp, err
}

func (c *Contract) checkAdmin(s state, sender util.Uint160) error {
	admin, err := s.admin()
	if err != nil {
		return err
	}
	return common.CheckAdmin(admin, sender)
}

func toFloat(v fixedpoint.Uint128) float64 {
	f, _ := new(big.Float).SetInt(v.Big()).Float64()
	return f
}
