package engagement

import (
	"bytes"
	"fmt"
	"math/bits"
	"sort"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/confio/poe-contracts-sub001/distribution"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

var (
	versionKey      = []byte{'v'}
	adminKey        = []byte{'a'}
	totalKey        = []byte{'t'}
	halflifeKey     = []byte{'h'}
	distributionKey = []byte{'d'}

	memberPrefix     = []byte{'m'}
	adjustmentPrefix = []byte{'w'}
)

func addressKey(prefix []byte, addr util.Uint160) []byte {
	return append(bytes.Clone(prefix), addr.BytesBE()...)
}

// u64 is a uint64 storage item.
type u64 uint64

func (v *u64) EncodeBinary(w *io.BinWriter) {
	w.WriteU64LE(uint64(*v))
}

func (v *u64) DecodeBinary(r *io.BinReader) {
	*v = u64(r.ReadU64LE())
}

// state provides typed access to the contract storage.
type state struct {
	st common.Store
}

func (s state) getU64(key []byte) (uint64, bool, error) {
	var v u64
	ok, err := common.GetSerialized(s.st, key, &v)
	return uint64(v), ok, err
}

func (s state) setU64(key []byte, v uint64) error {
	item := u64(v)
	return common.SetSerialized(s.st, key, &item)
}

func (s state) version() (int, bool, error) {
	v, ok, err := s.getU64(versionKey)
	return int(v), ok, err
}

func (s state) setVersion(v int) error {
	return s.setU64(versionKey, uint64(v))
}

func (s state) admin() (*util.Uint160, error) {
	var admin util.Uint160
	ok, err := common.GetSerialized(s.st, adminKey, &admin)
	if err != nil || !ok {
		return nil, err
	}
	return &admin, nil
}

func (s state) setAdmin(admin *util.Uint160) error {
	if admin == nil {
		s.st.Delete(adminKey)
		return nil
	}
	return common.SetSerialized(s.st, adminKey, admin)
}

func (s state) total() (uint64, error) {
	v, _, err := s.getU64(totalKey)
	return v, err
}

func (s state) setTotal(v uint64) error {
	return s.setU64(totalKey, v)
}

func (s state) member(addr util.Uint160) (uint64, bool, error) {
	return s.getU64(addressKey(memberPrefix, addr))
}

// members returns all members ordered by address.
func (s state) members() ([]common.Member, error) {
	items := common.GetList(s.st, memberPrefix)
	res := make([]common.Member, 0, len(items))
	for _, kv := range items {
		// address is the key tail regardless of how the store reports keys
		if len(kv.Key) < util.Uint160Size {
			return nil, fmt.Errorf("invalid member key %x", kv.Key)
		}
		addr, err := util.Uint160DecodeBytesBE(kv.Key[len(kv.Key)-util.Uint160Size:])
		if err != nil {
			return nil, fmt.Errorf("invalid member key %x: %w", kv.Key, err)
		}
		r := io.NewBinReaderFromBuf(kv.Value)
		w := r.ReadU64LE()
		if r.Err != nil {
			return nil, fmt.Errorf("invalid weight of %s: %w", addr.StringLE(), r.Err)
		}
		res = append(res, common.Member{Addr: addr, Weight: w})
	}
	sort.Slice(res, func(i, j int) bool {
		return addressLess(res[i].Addr, res[j].Addr)
	})
	return res, nil
}

func addressLess(a, b util.Uint160) bool {
	return bytes.Compare(a.BytesBE(), b.BytesBE()) < 0
}

func (s state) halflife() (distribution.Halflife, error) {
	var h distribution.Halflife
	_, err := common.GetSerialized(s.st, halflifeKey, &h)
	return h, err
}

func (s state) setHalflife(h *distribution.Halflife) error {
	return common.SetSerialized(s.st, halflifeKey, h)
}

func (s state) distribution() (distribution.Distribution, error) {
	var d distribution.Distribution
	ok, err := common.GetSerialized(s.st, distributionKey, &d)
	if err == nil && !ok {
		err = ErrNotInitialized
	}
	return d, err
}

func (s state) setDistribution(d *distribution.Distribution) error {
	return common.SetSerialized(s.st, distributionKey, d)
}

// adjustment returns the member ledger record. Missing records are created
// empty and delegated to the member itself.
func (s state) adjustment(addr util.Uint160) (distribution.WithdrawAdjustment, error) {
	var adj distribution.WithdrawAdjustment
	ok, err := common.GetSerialized(s.st, addressKey(adjustmentPrefix, addr), &adj)
	if err != nil {
		return adj, err
	}
	if !ok {
		adj = distribution.NewWithdrawAdjustment(addr)
	}
	return adj, nil
}

func (s state) setAdjustment(addr util.Uint160, adj *distribution.WithdrawAdjustment) error {
	return common.SetSerialized(s.st, addressKey(adjustmentPrefix, addr), adj)
}

// setWeight changes the member weight together with its ledger correction
// and the total weight. Nil weight removes the member.
func (s state) setWeight(d *distribution.Distribution, total *uint64, addr util.Uint160, weight *uint64) (common.MemberDiff, error) {
	diff := common.MemberDiff{Addr: addr}

	old, ok, err := s.member(addr)
	if err != nil {
		return diff, err
	}
	if ok {
		diff.Old = common.Weight(old)
	}

	var newWeight uint64
	if weight != nil {
		newWeight = *weight
		diff.New = common.Weight(newWeight)
	}

	adj, err := s.adjustment(addr)
	if err != nil {
		return diff, err
	}
	if err := d.UpdateWeight(old, newWeight, &adj); err != nil {
		return diff, err
	}
	if err := s.setAdjustment(addr, &adj); err != nil {
		return diff, err
	}

	if *total < old {
		return diff, fmt.Errorf("%w: total weight %d below member weight %d", distribution.ErrBrokenState, *total, old)
	}
	newTotal, carry := bits.Add64(*total-old, newWeight, 0)
	if carry != 0 {
		return diff, distribution.ErrWeightOverflow
	}
	*total = newTotal

	if weight == nil {
		s.st.Delete(addressKey(memberPrefix, addr))
		return diff, nil
	}
	return diff, s.setU64(addressKey(memberPrefix, addr), newWeight)
}
