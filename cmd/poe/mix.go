package main

import (
	"fmt"

	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func mixCommand() cli.Command {
	return cli.Command{
		Name:  "mix",
		Usage: "Compute the mixed score of the given stake and engagement",
		Flags: append([]cli.Flag{
			cli.Uint64Flag{Name: "stake", Usage: "Stake weight"},
			cli.Uint64Flag{Name: "engagement", Usage: "Engagement points"},
		}, functionFlags...),
		Action: mix,
	}
}

func mix(ctx *cli.Context) error {
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

	stake, engagement := ctx.Uint64("stake"), ctx.Uint64("engagement")
	score, err := fn.Score(stake, engagement)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	log.Debug("score computed",
		zap.String("function", string(ft.Kind)),
		zap.Uint64("stake", stake),
		zap.Uint64("engagement", engagement),
		zap.Uint64("score", score))

	fmt.Fprintln(ctx.App.Writer, score)
	return nil
}
