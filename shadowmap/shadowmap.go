// Package shadowmap provides a map that keeps a field-list mirror of itself.
//
// Persistence layers that encode structs field by field (json, yaml, msgpack,
// bson and friends) cannot round-trip an arbitrary keyed association whose
// keys are not strings. A Map keeps the live association private and exposes
// two plain slices, Keys and Values, which such a layer persists instead.
//
// The two representations are brought into agreement at exactly two points:
//
//   - PrepareForPersistence rebuilds Keys and Values from the live map. Call it
//     immediately before the struct is encoded.
//   - RestoreFromPersistence rebuilds the live map from Keys and Values. Call it
//     immediately after the struct has been decoded.
//
// Between those calls the live map is the only source of truth and the slices
// are stale. Restoring is deliberately tolerant: when the slices have different
// lengths the tail of the longer one is ignored, and when a key repeats the last
// occurrence wins.
//
// A Map is not safe for concurrent use. Copying a Map value copies a reference
// to its live map: once the original has been used, the copy and the original
// share live entries but keep separate shadows and State. Maps nested inside
// the values of another map are copied this way when it prepares its shadows.
package shadowmap

import (
	"iter"

	"github.com/amp-labs/shadowmap/collectable"
	"github.com/amp-labs/shadowmap/hashing"
	"github.com/amp-labs/shadowmap/maps"
)

// Map is an insertion-ordered association from K to V plus its two shadow
// sequences. The zero value is an empty map ready to use, hashing keys with
// hashing.Xxh3.
type Map[K collectable.Collectable[K], V any] struct {
	// Keys is the shadow key sequence. Only meaningful right after
	// PrepareForPersistence, or right before RestoreFromPersistence.
	Keys []K `bson:"keys" json:"keys" msgpack:"keys" yaml:"keys"`

	// Values is the shadow value sequence, index-aligned with Keys.
	Values []V `bson:"values" json:"values" msgpack:"values" yaml:"values"`

	hash  hashing.HashFunc
	live  maps.OrderedMap[K, V]
	state State
}

// Option configures a Map created with New.
type Option func(*options)

type options struct {
	hash hashing.HashFunc
}

// WithHashFunc sets the function used to digest keys of the live map.
func WithHashFunc(hash hashing.HashFunc) Option {
	return func(o *options) {
		o.hash = hash
	}
}

// New creates an empty Map. Without options it is equivalent to the zero value.
func New[K collectable.Collectable[K], V any](opts ...Option) *Map[K, V] {
	o := &options{hash: hashing.Xxh3}

	for _, opt := range opts {
		opt(o)
	}

	m := &Map[K, V]{hash: o.hash}
	m.init()

	return m
}

func (m *Map[K, V]) init() {
	if m.live != nil {
		return
	}

	if m.hash == nil {
		m.hash = hashing.Xxh3
	}

	m.live = maps.NewOrderedHashMap[K, V](m.hash)
}

// Set inserts or overwrites the value for key. An overwritten key keeps its
// position in iteration order. Errors come from hashing the key and are
// returned unmodified.
func (m *Map[K, V]) Set(key K, value V) error {
	m.init()

	if err := m.live.Add(key, value); err != nil {
		return err
	}

	m.state = StateLiveDirty

	return nil
}

// Get looks up key. found is false when the key is absent.
func (m *Map[K, V]) Get(key K) (value V, found bool, err error) {
	m.init()

	return m.live.Get(key)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) (bool, error) {
	m.init()

	return m.live.Contains(key)
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) error {
	m.init()

	present, err := m.live.Contains(key)
	if err != nil || !present {
		return err
	}

	if err := m.live.Remove(key); err != nil {
		return err
	}

	m.state = StateLiveDirty

	return nil
}

// Clear empties the live map. The shadow sequences are left as they are;
// use ClearAll to reset everything.
func (m *Map[K, V]) Clear() {
	m.init()

	if m.live.Size() == 0 {
		return
	}

	m.live.Clear()
	m.state = StateLiveDirty
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	if m.live == nil {
		return 0
	}

	return m.live.Size()
}

// All iterates the live entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.live == nil {
			return
		}

		for _, entry := range m.live.Seq() {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// LiveKeys returns a copy of the live keys in iteration order.
func (m *Map[K, V]) LiveKeys() []K {
	if m.live == nil {
		return nil
	}

	return m.live.Keys()
}

// HashFunction returns the function keys of the live map are digested with.
func (m *Map[K, V]) HashFunction() hashing.HashFunc {
	switch {
	case m.live != nil:
		return m.live.HashFunction()
	case m.hash != nil:
		return m.hash
	default:
		return hashing.Xxh3
	}
}

// State reports where the map is in its synchronization lifecycle.
func (m *Map[K, V]) State() State {
	return m.state
}
