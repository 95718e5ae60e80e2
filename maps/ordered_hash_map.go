// Package maps provides the insertion-ordered hash map that backs the live
// side of a shadow map.
package maps

import (
	"iter"
	"slices"

	"github.com/amp-labs/shadowmap/collectable"
	"github.com/amp-labs/shadowmap/hashing"
)

// KeyValuePair is a single map entry as yielded by OrderedMap.Seq.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a generic ordered hash map interface for storing key-value pairs where keys must be
// both hashable and comparable. Iteration follows insertion order. Keys whose digests collide are
// told apart with Equals, so the only errors are those returned by the key's own UpdateHash.
//
// Thread-safety: Implementations are not thread-safe. Concurrent access must be synchronized by the caller.
type OrderedMap[K collectable.Collectable[K], V any] interface {
	// Get retrieves the value for the given key. found is false if the key is absent.
	Get(key K) (value V, found bool, err error)

	// Add inserts or updates a key-value pair in the map.
	// If the key already exists, its value is replaced without changing the insertion order.
	// If the key is new, it's appended to the end of the insertion order.
	Add(key K, value V) error

	// Remove deletes the key-value pair from the map.
	// If the key doesn't exist, this is a no-op and returns nil.
	Remove(key K) error

	// Clear removes all key-value pairs from the map, leaving it empty.
	Clear()

	// Contains checks if the given key exists in the map.
	Contains(key K) (bool, error)

	// Size returns the number of key-value pairs currently stored in the map.
	Size() int

	// Seq returns an iterator over all entries in insertion order. The index is the
	// entry's position in that order.
	Seq() iter.Seq2[int, KeyValuePair[K, V]]

	// Keys returns the keys in insertion order. The slice is a copy.
	Keys() []K

	// HashFunction returns the hash function used by this map.
	HashFunction() hashing.HashFunc
}

// NewOrderedHashMap creates a new ordered hash-based OrderedMap using the provided hash function.
// The hash function must produce consistent hash values for equal keys.
//
// Example:
//
//	m := maps.NewOrderedHashMap[hashing.HashableString, int](hashing.Xxh3)
//	_ = m.Add("first", 1)
//	_ = m.Add("second", 2)
//	// Iteration will always be in order: first, second
func NewOrderedHashMap[K collectable.Collectable[K], V any](hash hashing.HashFunc) OrderedMap[K, V] {
	return &orderedHashMap[K, V]{
		hash:    hash,
		buckets: make(map[string][]*KeyValuePair[K, V]),
	}
}

// orderedHashMap chains entries per key digest and keeps the entries
// themselves in a slice to remember insertion order. Iteration never
// re-hashes and cannot fail.
type orderedHashMap[K collectable.Collectable[K], V any] struct {
	order   []*KeyValuePair[K, V]            // entries in insertion order
	hash    hashing.HashFunc                 // key -> digest
	buckets map[string][]*KeyValuePair[K, V] // digest -> entries sharing it
}

// lookup returns the key's digest and its entry, or nil when absent.
func (o *orderedHashMap[K, V]) lookup(key K) (string, *KeyValuePair[K, V], error) {
	hashVal, err := o.hash(key)
	if err != nil {
		return "", nil, err
	}

	for _, entry := range o.buckets[hashVal] {
		if key.Equals(entry.Key) {
			return hashVal, entry, nil
		}
	}

	return hashVal, nil, nil
}

func (o *orderedHashMap[K, V]) Get(key K) (value V, found bool, err error) {
	_, entry, err := o.lookup(key)
	if err != nil || entry == nil {
		var zero V

		return zero, false, err
	}

	return entry.Value, true, nil
}

func (o *orderedHashMap[K, V]) Add(key K, value V) error {
	hashVal, entry, err := o.lookup(key)
	if err != nil {
		return err
	}

	if entry != nil {
		entry.Value = value

		return nil
	}

	entry = &KeyValuePair[K, V]{Key: key, Value: value}
	o.buckets[hashVal] = append(o.buckets[hashVal], entry)
	o.order = append(o.order, entry)

	return nil
}

// Remove is O(n) in the number of entries because the entry has to be cut
// out of the order slice.
func (o *orderedHashMap[K, V]) Remove(key K) error {
	hashVal, entry, err := o.lookup(key)
	if err != nil || entry == nil {
		return err
	}

	bucket := slices.DeleteFunc(o.buckets[hashVal], func(e *KeyValuePair[K, V]) bool {
		return e == entry
	})
	if len(bucket) == 0 {
		delete(o.buckets, hashVal)
	} else {
		o.buckets[hashVal] = bucket
	}

	if idx := slices.Index(o.order, entry); idx >= 0 {
		o.order = slices.Delete(o.order, idx, idx+1)
	}

	return nil
}

func (o *orderedHashMap[K, V]) Clear() {
	o.order = nil
	o.buckets = make(map[string][]*KeyValuePair[K, V])
}

func (o *orderedHashMap[K, V]) Contains(key K) (bool, error) {
	_, entry, err := o.lookup(key)

	return entry != nil, err
}

func (o *orderedHashMap[K, V]) Size() int {
	return len(o.order)
}

func (o *orderedHashMap[K, V]) Seq() iter.Seq2[int, KeyValuePair[K, V]] {
	return func(yield func(int, KeyValuePair[K, V]) bool) {
		for i, entry := range o.order {
			if !yield(i, *entry) {
				return
			}
		}
	}
}

func (o *orderedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(o.order))

	for _, entry := range o.order {
		keys = append(keys, entry.Key)
	}

	return keys
}

func (o *orderedHashMap[K, V]) HashFunction() hashing.HashFunc {
	return o.hash
}
