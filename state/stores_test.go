package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemKeyValueStore(t *testing.T) {
	kvs, err := New[string, int]()
	require.NoError(t, err)

	_, err = kvs.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kvs.Put("a", 1))
	v, err := kvs.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, kvs.Delete("a"))
	_, err = kvs.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, kvs.Close())
}

func TestBoltDBKeyValueStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	open := func() KeyValueStore[int, string] {
		kvs, err := New[int, string](
			WithBoltDB[int, string]("names"),
			WithDirPath[int, string](dir),
			WithKeySerde[int, string](IntSerde),
		)
		require.NoError(t, err)
		return kvs
	}

	kvs := open()
	require.NoError(t, kvs.Put(1, "one"))
	require.NoError(t, kvs.Put(2, "two"))
	require.NoError(t, kvs.Delete(2))
	require.NoError(t, kvs.Close())
	require.NoError(t, kvs.Close())

	kvs = open()
	defer kvs.Close()

	v, err := kvs.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, "one", v)

	_, err = kvs.Get(2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltDBKeyValueStore_SharedDB(t *testing.T) {
	dir := t.TempDir()
	first, err := New[string, int](WithBoltDB[string, int]("first"), WithDirPath[string, int](dir))
	require.NoError(t, err)
	second, err := New[string, int](WithBoltDB[string, int]("second"), WithDirPath[string, int](dir))
	require.NoError(t, err)

	require.NoError(t, first.Put("k", 1))
	require.NoError(t, second.Put("k", 2))
	require.NoError(t, first.Close())

	v, err := second.Get("k")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.NoError(t, second.Close())
}

func TestOptions(t *testing.T) {
	_, err := New[int, int](WithKeySerde[int, int](nil))
	assert.Error(t, err)

	_, err = New[int, int](WithValueSerde[int, int](nil))
	assert.Error(t, err)

	_, err = New[int, int](WithBoltDB[int, int](""))
	assert.Error(t, err)

	_, err = New[int, int](WithBoltDB[int, int]("b"), WithInMemory[int, int]())
	assert.NoError(t, err)
}

func TestIntSerde(t *testing.T) {
	b, err := IntSerde.Serialize(-1234)
	require.NoError(t, err)
	v, err := IntSerde.Deserialize(b)
	assert.NoError(t, err)
	assert.Equal(t, -1234, v)

	_, err = IntSerde.Deserialize([]byte{1})
	assert.Error(t, err)
}
