package common

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/io"
)

// Store is a key-value storage of contract state. It is implemented by
// storage.MemCachedStore.
type Store interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte)
	Delete(key []byte)
	Seek(rng storage.SeekRange, f func(k, v []byte) bool)
}

// KeyValue is a single storage item.
type KeyValue struct {
	Key   []byte
	Value []byte
}

// GetSerialized decodes the value stored by key into v. It returns false
// if there is no such key.
func GetSerialized(s Store, key []byte, v io.Serializable) (bool, error) {
	data, err := s.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read item %x: %w", key, err)
	}

	r := io.NewBinReaderFromBuf(data)
	v.DecodeBinary(r)
	if r.Err != nil {
		return false, fmt.Errorf("decode item %x: %w", key, r.Err)
	}
	return true, nil
}

// SetSerialized serializes data and puts it into the store.
func SetSerialized(s Store, key []byte, v io.Serializable) error {
	w := io.NewBufBinWriter()
	v.EncodeBinary(w.BinWriter)
	if w.Err != nil {
		return fmt.Errorf("encode item %x: %w", key, w.Err)
	}
	s.Put(key, w.Bytes())
	return nil
}

// GetList returns all items with the given prefix. Returned keys have the
// prefix cut. Items are copied, so the store can be modified while the
// result is in use.
func GetList(s Store, prefix []byte) []KeyValue {
	var res []KeyValue
	s.Seek(storage.SeekRange{Prefix: prefix}, func(k, v []byte) bool {
		res = append(res, KeyValue{
			Key:   bytes.Clone(bytes.TrimPrefix(k, prefix)),
			Value: bytes.Clone(v),
		})
		return true
	})
	return res
}
