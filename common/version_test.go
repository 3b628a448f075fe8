package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckVersion(t *testing.T) {
	require.NoError(t, CheckVersion(PrevVersion))
	require.ErrorIs(t, CheckVersion(PrevVersion-1), ErrVersionMismatch)
	require.ErrorIs(t, CheckVersion(Version), ErrAlreadyUpdated)
	require.Equal(t, "0.2.0", VersionString(Version))
	require.Equal(t, "1.15.4", VersionString(1_015_004))
}
