package common

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestCheckAdmin(t *testing.T) {
	admin := util.Uint160{1}

	require.NoError(t, CheckAdmin(&admin, admin))
	require.ErrorIs(t, CheckAdmin(&admin, util.Uint160{2}), ErrUnauthorized)
	require.ErrorIs(t, CheckAdmin(nil, admin), ErrUnauthorized)
}

func TestCheckOwnerWitness(t *testing.T) {
	owner, delegate := util.Uint160{1}, util.Uint160{2}

	require.NoError(t, CheckOwnerWitness(owner, delegate, owner))
	require.NoError(t, CheckOwnerWitness(owner, delegate, delegate))
	require.ErrorIs(t, CheckOwnerWitness(owner, delegate, util.Uint160{3}), ErrUnauthorized)
}

func TestEvent(t *testing.T) {
	ev := NewEvent("withdraw", "owner", "a", "amount", "10")
	v, ok := ev.Attribute("amount")
	require.True(t, ok)
	require.Equal(t, "10", v)

	_, ok = ev.Attribute("missing")
	require.False(t, ok)
}
