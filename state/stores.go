package state

import "errors"

var ErrNotFound = errors.New("state: cannot find value")

type ReadOnlyKeyValueStore[K, V any] interface {
	Get(key K) (V, error)
}

type KeyValueStore[K, V any] interface {
	ReadOnlyKeyValueStore[K, V]

	Put(key K, value V) error
	Delete(key K) error
	Close() error
}

func New[K, V any](opts ...Option[K, V]) (KeyValueStore[K, V], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	switch o.storeType {
	case BoltDB:
		return newBoltDBKeyValueStore(o)
	default:
		return newMemKeyValueStore(o), nil
	}
}
