package mixer

import (
	"bytes"
	"fmt"
	"math/bits"
	"sort"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/confio/poe-contracts-sub001/internal/metrics"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Group mixes two weighted groups into one. Only accounts present in both
// source groups are members of the mixed group, their weight is the Function
// score of the stake and engagement weights.
type Group struct {
	fn Function

	stake      map[util.Uint160]uint64
	engagement map[util.Uint160]uint64
	mixed      map[util.Uint160]uint64
	total      uint64
}

// NewGroup builds the mixed group from the initial members of both sources.
func NewGroup(fn Function, stake, engagement []common.Member) (*Group, error) {
	g := &Group{
		fn:         fn,
		stake:      make(map[util.Uint160]uint64, len(stake)),
		engagement: make(map[util.Uint160]uint64, len(engagement)),
		mixed:      make(map[util.Uint160]uint64),
	}
	for _, m := range stake {
		g.stake[m.Addr] = m.Weight
	}
	for _, m := range engagement {
		g.engagement[m.Addr] = m.Weight
	}

	for addr, s := range g.stake {
		e, ok := g.engagement[addr]
		if !ok {
			continue
		}
		w, err := g.score(s, e)
		if err != nil {
			return nil, fmt.Errorf("mix %s: %w", addr.StringLE(), err)
		}
		var carry uint64
		g.total, carry = bits.Add64(g.total, w, 0)
		if carry != 0 {
			return nil, ErrWeightOverflow
		}
		g.mixed[addr] = w
	}
	return g, nil
}

// TotalWeight returns the sum of mixed weights.
func (g *Group) TotalWeight() uint64 {
	return g.total
}

// Member returns mixed weight of addr.
func (g *Group) Member(addr util.Uint160) (uint64, bool) {
	w, ok := g.mixed[addr]
	return w, ok
}

// ListMembers returns mixed members ordered by address.
func (g *Group) ListMembers() []common.Member {
	res := make([]common.Member, 0, len(g.mixed))
	for addr, w := range g.mixed {
		res = append(res, common.Member{Addr: addr, Weight: w})
	}
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Addr.BytesBE(), res[j].Addr.BytesBE()) < 0
	})
	return res
}

// UpdateStake applies stake group changes and returns resulting changes of
// the mixed group.
func (g *Group) UpdateStake(diffs []common.MemberDiff) ([]common.MemberDiff, error) {
	return g.update(g.stake, g.engagement, diffs, func(own, other uint64) (uint64, error) {
		return g.score(own, other)
	})
}

// UpdateEngagement applies engagement group changes and returns resulting
// changes of the mixed group.
func (g *Group) UpdateEngagement(diffs []common.MemberDiff) ([]common.MemberDiff, error) {
	return g.update(g.engagement, g.stake, diffs, func(own, other uint64) (uint64, error) {
		return g.score(other, own)
	})
}

// update is all-or-nothing: nothing is changed if any score fails.
func (g *Group) update(own, other map[util.Uint160]uint64, diffs []common.MemberDiff,
	score func(own, other uint64) (uint64, error)) ([]common.MemberDiff, error) {
	var (
		res   []common.MemberDiff
		mixed = make(map[util.Uint160]*uint64, len(diffs))
		total = g.total
	)

	for _, d := range diffs {
		var newMixed *uint64
		if otherWeight, ok := other[d.Addr]; ok && d.New != nil {
			w, err := score(*d.New, otherWeight)
			if err != nil {
				return nil, fmt.Errorf("mix %s: %w", d.Addr.StringLE(), err)
			}
			newMixed = &w
		}

		oldMixed, hadMixed := g.mixed[d.Addr]
		if prev, ok := mixed[d.Addr]; ok {
			hadMixed = prev != nil
			if prev != nil {
				oldMixed = *prev
			}
		}
		mixed[d.Addr] = newMixed

		var oldPtr *uint64
		if hadMixed {
			oldPtr = common.Weight(oldMixed)
			total -= oldMixed
		}
		if newMixed != nil {
			var carry uint64
			total, carry = bits.Add64(total, *newMixed, 0)
			if carry != 0 {
				return nil, ErrWeightOverflow
			}
		}
		if oldPtr != nil || newMixed != nil {
			res = append(res, common.MemberDiff{Addr: d.Addr, Old: oldPtr, New: newMixed})
		}
	}

	for _, d := range diffs {
		if d.New != nil {
			own[d.Addr] = *d.New
		} else {
			delete(own, d.Addr)
		}
	}
	for addr, w := range mixed {
		if w != nil {
			g.mixed[addr] = *w
		} else {
			delete(g.mixed, addr)
		}
	}
	g.total = total

	return res, nil
}

func (g *Group) score(stake, engagement uint64) (uint64, error) {
	w, err := g.fn.Score(stake, engagement)
	metrics.MixerScoresTotal.WithLabelValues(string(KindOf(g.fn)), metrics.Status(err)).Inc()
	return w, err
}
