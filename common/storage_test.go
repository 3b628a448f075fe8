package common

import (
	"testing"

	"github.com/confio/poe-contracts-sub001/fixedpoint"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/stretchr/testify/require"
)

func TestSerialized(t *testing.T) {
	st := storage.NewMemCachedStore(storage.NewMemoryStore())

	var v fixedpoint.Uint128
	ok, err := GetSerialized(st, []byte("x"), &v)
	require.NoError(t, err)
	require.False(t, ok)

	x := fixedpoint.NewUint128(42)
	require.NoError(t, SetSerialized(st, []byte("x"), &x))

	ok, err = GetSerialized(st, []byte("x"), &v)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "42", v.String())

	t.Run("corrupted", func(t *testing.T) {
		st.Put([]byte("y"), []byte{0xFF})
		_, err := GetSerialized(st, []byte("y"), &v)
		require.Error(t, err)
	})
}

func TestGetList(t *testing.T) {
	st := storage.NewMemCachedStore(storage.NewMemoryStore())
	st.Put([]byte("m1"), []byte{1})
	st.Put([]byte("m2"), []byte{2})
	st.Put([]byte("t"), []byte{3})

	items := GetList(st, []byte("m"))
	require.ElementsMatch(t, []KeyValue{
		{Key: []byte("1"), Value: []byte{1}},
		{Key: []byte("2"), Value: []byte{2}},
	}, items)

	// the list is detached from the store
	for _, kv := range items {
		st.Delete(append([]byte("m"), kv.Key...))
	}
	require.Empty(t, GetList(st, []byte("m")))
}
