package engagement

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/confio/poe-contracts-sub001/distribution"
	"github.com/confio/poe-contracts-sub001/internal/metrics"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// Prm groups parameters of the contract instantiation.
type Prm struct {
	// Admin manages membership. Optional: without admin members can only be
	// changed by the host.
	Admin *util.Uint160

	// Initial members.
	Members []common.Member

	// Halflife is the weight decay period. Zero disables the decay.
	Halflife time.Duration

	// Denom of distributed rewards. Required.
	Denom string

	// Now is the instantiation time, decay periods are counted from it.
	Now time.Time

	// Logger, optional.
	Logger *zap.Logger
}

// Response is the result of a state-changing call.
type Response struct {
	Events    []common.Event
	Transfers []common.Transfer
	Diffs     []common.MemberDiff
}

// Contract is the engagement group contract. It is not safe for concurrent
// use: calls must be serialized by the host.
type Contract struct {
	store storage.Store
	log   *zap.Logger
}

// New instantiates the contract in the given store.
func New(store storage.Store, prm Prm) (*Contract, error) {
	if prm.Denom == "" {
		return nil, ErrEmptyDenom
	}

	c := newContract(store, prm.Logger)

	_, err := c.exec("instantiate", func(s state, _ *Response) error {
		if _, ok, err := s.version(); err != nil {
			return err
		} else if ok {
			return ErrAlreadyInitialized
		}

		if err := s.setAdmin(prm.Admin); err != nil {
			return err
		}

		var total uint64
		for _, m := range prm.Members {
			if _, ok, err := s.member(m.Addr); err != nil {
				return err
			} else if ok {
				return fmt.Errorf("%w: %s", ErrDuplicateMember, address.Uint160ToString(m.Addr))
			}

			var carry uint64
			total, carry = bits.Add64(total, m.Weight, 0)
			if carry != 0 {
				return distribution.ErrWeightOverflow
			}
			if err := s.setU64(addressKey(memberPrefix, m.Addr), m.Weight); err != nil {
				return err
			}
		}
		if err := s.setTotal(total); err != nil {
			return err
		}

		h := distribution.NewHalflife(prm.Halflife, prm.Now)
		if err := s.setHalflife(&h); err != nil {
			return err
		}
		d := distribution.New(prm.Denom)
		if err := s.setDistribution(&d); err != nil {
			return err
		}
		return s.setVersion(common.Version)
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("engagement contract instantiated",
		zap.Int("members", len(prm.Members)),
		zap.Duration("halflife", prm.Halflife),
		zap.String("denom", prm.Denom),
		zap.String("version", common.VersionString(common.Version)))

	return c, nil
}

// Open opens the contract previously instantiated in the store.
func Open(store storage.Store, log *zap.Logger) (*Contract, error) {
	c := newContract(store, log)

	_, ok, err := c.view().version()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotInitialized
	}
	return c, nil
}

func newContract(store storage.Store, log *zap.Logger) *Contract {
	if log == nil {
		log = zap.NewNop()
	}
	return &Contract{store: store, log: log}
}

// exec runs f against the transactional overlay of the store and persists
// changes only if f succeeds.
func (c *Contract) exec(method string, f func(s state, resp *Response) error) (Response, error) {
	var (
		tx   = storage.NewMemCachedStore(c.store)
		resp Response
	)

	err := f(state{st: tx}, &resp)
	if err == nil {
		_, err = tx.PersistSync()
		if err != nil {
			err = fmt.Errorf("persist changes: %w", err)
		}
	}

	metrics.ContractCallsTotal.WithLabelValues(method, metrics.Status(err)).Inc()

	if err != nil {
		c.log.Debug("contract call failed", zap.String("method", method), zap.Error(err))
		return Response{}, fmt.Errorf("%s: %w", method, err)
	}
	return resp, nil
}

// view returns state for read-only access. Writes to it are discarded.
func (c *Contract) view() state {
	return state{st: storage.NewMemCachedStore(c.store)}
}

func addressField(key string, addr util.Uint160) zap.Field {
	return zap.String(key, address.Uint160ToString(addr))
}
