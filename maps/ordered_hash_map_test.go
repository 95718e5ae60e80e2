package maps_test

import (
	"hash"
	"testing"

	"github.com/amp-labs/shadowmap/hashing"
	"github.com/amp-labs/shadowmap/maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	value string
}

func (k testKey) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(k.value))

	return err
}

func (k testKey) Equals(other testKey) bool {
	return k.value == other.value
}

// collidingKey always hashes to the same digest.
type collidingKey struct {
	id int
}

func (k collidingKey) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte("same"))

	return err
}

func (k collidingKey) Equals(other collidingKey) bool {
	return k.id == other.id
}

func keysOf[V any](m maps.OrderedMap[testKey, V]) []string {
	var out []string

	for _, entry := range m.Seq() {
		out = append(out, entry.Key.value)
	}

	return out
}

func TestNewOrderedHashMap(t *testing.T) {
	t.Parallel()

	m := maps.NewOrderedHashMap[testKey, string](hashing.Sha256)
	require.NotNil(t, m)
	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Keys())
}

func TestOrderedHashMap_Add(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
		expected := []string{"first", "second", "third"}

		for i, key := range expected {
			require.NoError(t, m.Add(testKey{value: key}, i))
		}

		idx := 0
		for i, entry := range m.Seq() {
			assert.Equal(t, idx, i)
			assert.Equal(t, expected[idx], entry.Key.value)
			assert.Equal(t, idx, entry.Value)

			idx++
		}

		assert.Equal(t, 3, idx)
	})

	t.Run("updates existing key without changing order", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[testKey, string](hashing.Xxh3)
		require.NoError(t, m.Add(testKey{value: "a"}, "1"))
		require.NoError(t, m.Add(testKey{value: "b"}, "2"))
		require.NoError(t, m.Add(testKey{value: "a"}, "3"))

		assert.Equal(t, 2, m.Size())
		assert.Equal(t, []string{"a", "b"}, keysOf(m))

		value, found, err := m.Get(testKey{value: "a"})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "3", value)
	})

	t.Run("colliding keys coexist", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[collidingKey, string](hashing.Sha256)
		require.NoError(t, m.Add(collidingKey{id: 1}, "one"))
		require.NoError(t, m.Add(collidingKey{id: 2}, "two"))
		require.NoError(t, m.Add(collidingKey{id: 1}, "uno"))

		assert.Equal(t, 2, m.Size())
		assert.Equal(t, []collidingKey{{id: 1}, {id: 2}}, m.Keys())

		value, found, err := m.Get(collidingKey{id: 1})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "uno", value)

		value, found, err = m.Get(collidingKey{id: 2})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "two", value)

		_, found, err = m.Get(collidingKey{id: 3})
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestOrderedHashMap_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes and keeps remaining order", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
		for i, key := range []string{"a", "b", "c"} {
			require.NoError(t, m.Add(testKey{value: key}, i))
		}

		require.NoError(t, m.Remove(testKey{value: "b"}))
		assert.Equal(t, []string{"a", "c"}, keysOf(m))

		ok, err := m.Contains(testKey{value: "b"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("re-adding moves key to the end", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
		require.NoError(t, m.Add(testKey{value: "a"}, 1))
		require.NoError(t, m.Add(testKey{value: "b"}, 2))
		require.NoError(t, m.Remove(testKey{value: "a"}))
		require.NoError(t, m.Add(testKey{value: "a"}, 3))

		assert.Equal(t, []string{"b", "a"}, keysOf(m))
	})

	t.Run("missing key is a no-op", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
		require.NoError(t, m.Remove(testKey{value: "missing"}))
		assert.Equal(t, 0, m.Size())
	})

	t.Run("colliding keys are removed one at a time", func(t *testing.T) {
		t.Parallel()

		m := maps.NewOrderedHashMap[collidingKey, int](hashing.Xxh3)
		for id := range 3 {
			require.NoError(t, m.Add(collidingKey{id: id}, id))
		}

		require.NoError(t, m.Remove(collidingKey{id: 1}))
		require.NoError(t, m.Remove(collidingKey{id: 7}))
		assert.Equal(t, []collidingKey{{id: 0}, {id: 2}}, m.Keys())

		ok, err := m.Contains(collidingKey{id: 1})
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, m.Remove(collidingKey{id: 0}))
		require.NoError(t, m.Remove(collidingKey{id: 2}))
		assert.Equal(t, 0, m.Size())

		require.NoError(t, m.Add(collidingKey{id: 1}, 10))
		assert.Equal(t, []collidingKey{{id: 1}}, m.Keys())
	})
}

func TestOrderedHashMap_GetContains(t *testing.T) {
	t.Parallel()

	m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
	require.NoError(t, m.Add(testKey{value: "a"}, 1))

	value, found, err := m.Get(testKey{value: "missing"})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, value)

	ok, err := m.Contains(testKey{value: "a"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOrderedHashMap_Clear(t *testing.T) {
	t.Parallel()

	m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
	require.NoError(t, m.Add(testKey{value: "a"}, 1))
	require.NoError(t, m.Add(testKey{value: "b"}, 2))

	m.Clear()

	assert.Equal(t, 0, m.Size())
	assert.Empty(t, keysOf(m))
	assert.NotNil(t, m.HashFunction())

	require.NoError(t, m.Add(testKey{value: "b"}, 3))
	assert.Equal(t, []string{"b"}, keysOf(m))
}

func TestOrderedHashMap_SeqStopsEarly(t *testing.T) {
	t.Parallel()

	m := maps.NewOrderedHashMap[testKey, int](hashing.Xxh3)
	for i, key := range []string{"a", "b", "c"} {
		require.NoError(t, m.Add(testKey{value: key}, i))
	}

	visited := 0

	for range m.Seq() {
		visited++

		if visited == 2 {
			break
		}
	}

	assert.Equal(t, 2, visited)
}
