package gflow

import (
	"context"
	"fmt"

	"github.com/KumKeeHyun/gflow/state"
)

type KeyValue[K, V any] struct {
	Key   K
	Value V
}

func NewKeyValue[K, V any](k K, v V) KeyValue[K, V] {
	return KeyValue[K, V]{
		Key:   k,
		Value: v,
	}
}

// SelectKey pairs every value of f with the key returned by selectKey.
func SelectKey[K, V any](f Flow[V], selectKey func(V) K) Flow[KeyValue[K, V]] {
	return Map(f, func(_ context.Context, v V) KeyValue[K, V] {
		return NewKeyValue(selectKey(v), v)
	})
}

// ToStore collects f into store, keeping the latest value per key. It
// returns the terminal failure of f, or the first store error, which also
// stops f. Values put before a failure stay in the store.
func ToStore[K, V any](ctx context.Context, f Flow[KeyValue[K, V]], store state.KeyValueStore[K, V]) error {
	return f.Collect(ctx, func(_ context.Context, kv KeyValue[K, V]) error {
		if err := store.Put(kv.Key, kv.Value); err != nil {
			return fmt.Errorf("gflow: put %v: %w", kv.Key, err)
		}
		return nil
	})
}
