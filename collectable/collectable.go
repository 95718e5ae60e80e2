// Package collectable defines the constraint shadow map keys must satisfy.
package collectable

import "github.com/amp-labs/shadowmap/hashing"

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Uniqueness of a map key is determined by
// its hash value, and collisions are resolved by comparing the keys.
type Collectable[T any] interface {
	hashing.Hashable
	Comparable[T]
}

var (
	_ Collectable[hashing.HashableString]  = hashing.HashableString("")
	_ Collectable[hashing.HashableRune]    = hashing.HashableRune(0)
	_ Collectable[hashing.HashableBool]    = hashing.HashableBool(false)
	_ Collectable[hashing.HashableInt]     = hashing.HashableInt(0)
	_ Collectable[hashing.HashableInt32]   = hashing.HashableInt32(0)
	_ Collectable[hashing.HashableInt64]   = hashing.HashableInt64(0)
	_ Collectable[hashing.HashableFloat32] = hashing.HashableFloat32(0)
	_ Collectable[hashing.HashableFloat64] = hashing.HashableFloat64(0)
)
