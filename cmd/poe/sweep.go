package main

import (
	"fmt"

	"github.com/confio/poe-contracts-sub001/mixer"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func sweepCommand() cli.Command {
	return cli.Command{
		Name:  "sweep",
		Usage: "Check that the function stays bounded and monotonic over a stake range",
		Flags: append([]cli.Flag{
			cli.Uint64Flag{Name: "engagement", Usage: "Fixed engagement points", Value: 5000},
			cli.Uint64Flag{Name: "from", Usage: "First stake value", Value: 1},
			cli.Uint64Flag{Name: "to", Usage: "Last stake value", Value: 1_000_000},
			cli.Uint64Flag{Name: "step", Usage: "Stake increment", Value: 1000},
		}, functionFlags...),
		Action: sweep,
	}
}

// sweepResult describes the first violation found by sweepStake.
type sweepResult struct {
	Checked uint64
	// Stake of the first violation, valid if Reason is not empty.
	Stake  uint64
	Score  uint64
	Reason string
}

// sweepStake evaluates fn for stakes from..to with the given step and stops at
// the first score which is above maxPoints (if bounded) or below the previous
// one.
func sweepStake(fn mixer.Function, maxPoints uint64, bounded bool, engagement, from, to, step uint64) (sweepResult, error) {
	var (
		res  sweepResult
		prev uint64
	)
	if step == 0 {
		return res, fmt.Errorf("zero step")
	}

	for stake := from; stake <= to; stake += step {
		score, err := fn.Score(stake, engagement)
		if err != nil {
			return res, fmt.Errorf("stake %d: %w", stake, err)
		}
		res.Checked++

		switch {
		case bounded && score > maxPoints:
			res.Stake, res.Score, res.Reason = stake, score, fmt.Sprintf("score above %d", maxPoints)
			return res, nil
		case score < prev:
			res.Stake, res.Score, res.Reason = stake, score, fmt.Sprintf("score decreased from %d", prev)
			return res, nil
		}
		prev = score

		if stake > to-step {
			break
		}
	}
	return res, nil
}

func sweep(ctx *cli.Context) error {
	log, err := newLogger(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	ft, err := loadFunctionType(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fn, err := ft.Function()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	res, err := sweepStake(fn, ft.MaxPoints, ft.Kind != mixer.KindGeometricMean,
		ctx.Uint64("engagement"), ctx.Uint64("from"), ctx.Uint64("to"), ctx.Uint64("step"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if res.Reason != "" {
		log.Error("function check failed",
			zap.Uint64("stake", res.Stake), zap.Uint64("score", res.Score), zap.String("reason", res.Reason))
		return cli.NewExitError(fmt.Sprintf("stake %d: %s", res.Stake, res.Reason), 2)
	}

	log.Info("function is bounded and monotonic", zap.Uint64("checked", res.Checked))
	fmt.Fprintf(ctx.App.Writer, "OK: %d points checked\n", res.Checked)
	return nil
}
