package main

import (
	"fmt"
	"os"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/confio/poe-contracts-sub001/mixer"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

var functionFlags = []cli.Flag{
	cli.StringFlag{Name: "config, c", Usage: "YAML file with the function description"},
	cli.StringFlag{Name: "function, f", Usage: "Function kind: geometric_mean, sigmoid, sigmoid_sqrt or algebraic_sigmoid"},
	cli.Uint64Flag{Name: "max-points", Usage: "Maximum score of sigmoid functions"},
	cli.StringFlag{Name: "a", Usage: "Algebraic sigmoid shape parameter"},
	cli.StringFlag{Name: "p", Usage: "Power of stake and engagement"},
	cli.StringFlag{Name: "s", Usage: "Steepness"},
}

// loadFunctionType reads the function description from the config file, if
// given, and overrides it with explicitly set flags.
func loadFunctionType(ctx *cli.Context) (mixer.FunctionType, error) {
	var ft mixer.FunctionType

	if path := ctx.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return ft, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &ft); err != nil {
			return ft, fmt.Errorf("decode config: %w", err)
		}
	}

	if ctx.IsSet("function") {
		ft.Kind = mixer.Kind(ctx.String("function"))
	}
	if ctx.IsSet("max-points") {
		ft.MaxPoints = ctx.Uint64("max-points")
	}
	for name, dst := range map[string]*fixedpoint.Decimal{"a": &ft.A, "p": &ft.P, "s": &ft.S} {
		if !ctx.IsSet(name) {
			continue
		}
		v, err := fixedpoint.ParseDecimal(ctx.String(name))
		if err != nil {
			return ft, fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = v
	}

	if ft.Kind == "" {
		return ft, fmt.Errorf("function kind is not specified")
	}
	return ft, nil
}
