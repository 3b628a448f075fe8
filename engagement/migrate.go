package engagement

import (
	"time"

	"github.com/confio/poe-contracts-sub001/common"
	"go.uber.org/zap"
)

// MigratePrm groups migration parameters.
type MigratePrm struct {
	// Halflife replaces the decay period if set. Zero disables the decay.
	Halflife *time.Duration
}

// Migrate upgrades contract state of the previous version to the current one.
func (c *Contract) Migrate(prm MigratePrm) (Response, error) {
	return c.exec("migrate", func(s state, _ *Response) error {
		from, _, err := s.version()
		if err != nil {
			return err
		}
		if err := common.CheckVersion(from); err != nil {
			return err
		}

		if prm.Halflife != nil {
			h, err := s.halflife()
			if err != nil {
				return err
			}
			h.Period = *prm.Halflife
			if err := s.setHalflife(&h); err != nil {
				return err
			}
		}

		c.log.Info("engagement contract migrated",
			zap.String("from", common.VersionString(from)),
			zap.String("to", common.VersionString(common.Version)))
		return s.setVersion(common.Version)
	})
}
