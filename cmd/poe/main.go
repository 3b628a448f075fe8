package main

import (
	"fmt"
	"os"

	"github.com/confio/poe-contracts-sub001/common"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	app := cli.NewApp()
	app.Name = "poe"
	app.Usage = "Evaluate proof-of-engagement mixer functions and simulate reward distribution"
	app.Version = common.VersionString(common.Version)
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "debug, d", Usage: "Enable debug logging"},
	}
	app.Commands = []cli.Command{
		mixCommand(),
		sweepCommand(),
		simulateCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(ctx *cli.Context) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if ctx.GlobalBool("debug") {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
