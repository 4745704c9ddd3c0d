package state

import (
	"sync"
)

func newMemKeyValueStore[K, V any](o *options[K, V]) KeyValueStore[K, V] {
	return &memKeyValueStore[K, V]{
		store:    make(map[string]V, 100),
		keySerde: o.keySerde,
	}
}

type memKeyValueStore[K, V any] struct {
	store    map[string]V
	keySerde Serde[K]
	mu       sync.Mutex
}

var _ KeyValueStore[any, any] = &memKeyValueStore[any, any]{}

func (kvs *memKeyValueStore[K, V]) Get(key K) (V, error) {
	var v V
	keySer, err := kvs.keySerde.Serialize(key)
	if err != nil {
		return v, err
	}

	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	v, exists := kvs.store[string(keySer)]
	if !exists {
		return v, ErrNotFound
	}
	return v, nil
}

func (kvs *memKeyValueStore[K, V]) Put(key K, value V) error {
	keySer, err := kvs.keySerde.Serialize(key)
	if err != nil {
		return err
	}

	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	kvs.store[string(keySer)] = value
	return nil
}

func (kvs *memKeyValueStore[K, V]) Delete(key K) error {
	keySer, err := kvs.keySerde.Serialize(key)
	if err != nil {
		return err
	}

	kvs.mu.Lock()
	defer kvs.mu.Unlock()

	delete(kvs.store, string(keySer))
	return nil
}

func (kvs *memKeyValueStore[K, V]) Close() error {
	return nil
}
