package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/confio/poe-contracts-sub001/engagement"
	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/confio/poe-contracts-sub001/mixer"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type scenarioMember struct {
	Address string `yaml:"address"`
	Weight  uint64 `yaml:"weight"`
}

// scenario is a YAML description of a reward distribution run.
type scenario struct {
	Denom    string           `yaml:"denom"`
	Halflife time.Duration    `yaml:"halflife"`
	Members  []scenarioMember `yaml:"members"`

	// Stake and Mixer are optional. When Mixer is set, engagement changes
	// are mixed with Stake and the resulting group is reported.
	Stake []scenarioMember    `yaml:"stake"`
	Mixer *mixer.FunctionType `yaml:"mixer"`

	Steps []struct {
		// Advance moves the block time forward before the step.
		Advance time.Duration `yaml:"advance"`
		// Reward is sent to the contract and distributed.
		Reward uint64 `yaml:"reward"`
		// Withdraw lists addresses withdrawing their rewards.
		Withdraw []string `yaml:"withdraw"`
	} `yaml:"steps"`
}

func simulateCommand() cli.Command {
	return cli.Command{
		Name:  "simulate",
		Usage: "Run a reward distribution scenario against an in-memory engagement contract",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config, c", Usage: "YAML scenario file"},
		},
		Action: simulate,
	}
}

func simulate(ctx *cli.Context) error {
	log, err := newLogger(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(ctx.String("config"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("read scenario: %w", err), 1)
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return cli.NewExitError(fmt.Errorf("decode scenario: %w", err), 1)
	}

	if err := runScenario(ctx.App.Writer, log, sc); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func parseMembers(list []scenarioMember) ([]common.Member, error) {
	members := make([]common.Member, 0, len(list))
	for _, m := range list {
		addr, err := address.StringToUint160(m.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid member address %q: %w", m.Address, err)
		}
		members = append(members, common.Member{Addr: addr, Weight: m.Weight})
	}
	return members, nil
}

func newMixedGroup(sc scenario, engaged []common.Member) (*mixer.Group, error) {
	if sc.Mixer == nil {
		return nil, nil
	}
	fn, err := sc.Mixer.Function()
	if err != nil {
		return nil, err
	}
	stake, err := parseMembers(sc.Stake)
	if err != nil {
		return nil, err
	}
	return mixer.NewGroup(fn, stake, engaged)
}

func runScenario(w io.Writer, log *zap.Logger, sc scenario) error {
	var (
		host    util.Uint160 // sender of host-side calls
		now     = time.Unix(0, 0).UTC()
		balance = fixedpoint.NewUint128(0)
	)

	members, err := parseMembers(sc.Members)
	if err != nil {
		return err
	}
	group, err := newMixedGroup(sc, members)
	if err != nil {
		return fmt.Errorf("mixer: %w", err)
	}

	c, err := engagement.New(storage.NewMemoryStore(), engagement.Prm{
		Members:  members,
		Halflife: sc.Halflife,
		Denom:    sc.Denom,
		Now:      now,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	for i, step := range sc.Steps {
		now = now.Add(step.Advance)
		resp, err := c.EndBlock(now)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if group != nil && len(resp.Diffs) != 0 {
			mixed, err := group.UpdateEngagement(resp.Diffs)
			if err != nil {
				return fmt.Errorf("step %d: mixer: %w", i, err)
			}
			for _, d := range mixed {
				if d.New != nil {
					fmt.Fprintf(w, "step %d: mixed %s weight %d\n", i, address.Uint160ToString(d.Addr), *d.New)
				}
			}
		}

		if balance, err = balance.Add(fixedpoint.NewUint128(step.Reward)); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if _, err := c.DistributeFunds(host, balance); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}

		for _, s := range step.Withdraw {
			addr, err := address.StringToUint160(s)
			if err != nil {
				return fmt.Errorf("step %d: invalid address %q: %w", i, s, err)
			}
			resp, err := c.WithdrawFunds(addr, nil, nil)
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			for _, tr := range resp.Transfers {
				if balance, err = balance.Sub(tr.Amount); err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
				fmt.Fprintf(w, "step %d: transfer %s\n", i, tr)
			}
		}
	}

	list, err := c.ListMembersByWeight(nil, 30)
	if err != nil {
		return err
	}
	for _, m := range list {
		funds, err := c.WithdrawableFunds(m.Addr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\tweight %d\twithdrawable %s%s\n",
			address.Uint160ToString(m.Addr), m.Weight, funds, sc.Denom)
	}

	if group != nil {
		for _, m := range group.ListMembers() {
			fmt.Fprintf(w, "mixed %s\tweight %d\n", address.Uint160ToString(m.Addr), m.Weight)
		}
		fmt.Fprintf(w, "mixed total weight %d\n", group.TotalWeight())
	}
	return nil
}
