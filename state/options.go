package state

import "errors"

type StoreType int

const (
	InMemory StoreType = iota
	BoltDB
)

type options[K, V any] struct {
	keySerde   Serde[K]
	valueSerde Serde[V]
	storeType  StoreType
	name       string
	dirPath    string
}

// key, value are serialized by json and the store lives in memory unless
// overridden.
func newOptions[K, V any](opts ...Option[K, V]) (*options[K, V], error) {
	o := &options[K, V]{
		keySerde:   &jsonSerde[K]{},
		valueSerde: &jsonSerde[V]{},
		storeType:  InMemory,
		dirPath:    ".",
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

type Option[K, V any] func(*options[K, V]) error

func WithKeySerde[K, V any](keySerde Serde[K]) Option[K, V] {
	return func(o *options[K, V]) error {
		if keySerde == nil {
			return errors.New("state: keySerde must not be nil")
		}
		o.keySerde = keySerde
		return nil
	}
}

func WithValueSerde[K, V any](valueSerde Serde[V]) Option[K, V] {
	return func(o *options[K, V]) error {
		if valueSerde == nil {
			return errors.New("state: valueSerde must not be nil")
		}
		o.valueSerde = valueSerde
		return nil
	}
}

func WithInMemory[K, V any]() Option[K, V] {
	return func(o *options[K, V]) error {
		o.storeType = InMemory
		return nil
	}
}

// WithBoltDB stores values in the bucket name of a bbolt database file.
func WithBoltDB[K, V any](name string) Option[K, V] {
	return func(o *options[K, V]) error {
		if name == "" {
			return errors.New("state: bucket name must not be empty")
		}
		o.storeType = BoltDB
		o.name = name
		return nil
	}
}

func WithDirPath[K, V any](dirPath string) Option[K, V] {
	return func(o *options[K, V]) error {
		o.dirPath = dirPath
		return nil
	}
}
