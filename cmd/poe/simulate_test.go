package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/confio/poe-contracts-sub001/mixer"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"
)

func TestRunScenario(t *testing.T) {
	a := address.Uint160ToString(util.Uint160{1})
	b := address.Uint160ToString(util.Uint160{2})

	src := fmt.Sprintf(`
denom: utgd
halflife: 0s
members:
  - address: %[1]s
    weight: 10
  - address: %[2]s
    weight: 30
steps:
  - reward: 400
    withdraw: [%[1]s]
  - advance: 1h
    reward: 40
`, a, b)

	var sc scenario
	require.NoError(t, yaml.Unmarshal([]byte(src), &sc))
	require.Len(t, sc.Members, 2)
	require.Len(t, sc.Steps, 2)

	var out bytes.Buffer
	require.NoError(t, runScenario(&out, zaptest.NewLogger(t), sc))

	require.Contains(t, out.String(), "step 0: transfer 100utgd to "+a)
	require.Contains(t, out.String(), b+"\tweight 30\twithdrawable 330utgd")
	require.Contains(t, out.String(), a+"\tweight 10\twithdrawable 10utgd")

	t.Run("invalid address", func(t *testing.T) {
		var sc scenario
		require.NoError(t, yaml.Unmarshal([]byte("denom: utgd\nmembers:\n  - address: nope\n    weight: 1\n"), &sc))
		require.Error(t, runScenario(&out, zaptest.NewLogger(t), sc))
	})
}

func TestRunScenarioMixer(t *testing.T) {
	a := address.Uint160ToString(util.Uint160{1})
	b := address.Uint160ToString(util.Uint160{2})

	src := fmt.Sprintf(`
denom: utgd
halflife: 1h
members:
  - address: %[1]s
    weight: 10
  - address: %[2]s
    weight: 30
stake:
  - address: %[1]s
    weight: 40
  - address: %[2]s
    weight: 30
mixer:
  kind: geometric_mean
steps:
  - advance: 1h
`, a, b)

	var sc scenario
	require.NoError(t, yaml.Unmarshal([]byte(src), &sc))
	require.NotNil(t, sc.Mixer)

	var out bytes.Buffer
	require.NoError(t, runScenario(&out, zaptest.NewLogger(t), sc))

	// engagement is halved to 5 and 15
	require.Contains(t, out.String(), "step 0: mixed "+a+" weight 14")
	require.Contains(t, out.String(), "step 0: mixed "+b+" weight 21")
	require.Contains(t, out.String(), "mixed "+a+"\tweight 14")
	require.Contains(t, out.String(), "mixed "+b+"\tweight 21")
	require.Contains(t, out.String(), "mixed total weight 35")

	t.Run("invalid function", func(t *testing.T) {
		sc := sc
		sc.Mixer = &mixer.FunctionType{Kind: mixer.KindSigmoid}
		require.ErrorIs(t, runScenario(&out, zaptest.NewLogger(t), sc), mixer.ErrParameterRange)
	})
}
