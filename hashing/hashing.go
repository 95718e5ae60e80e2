// Package hashing provides key hashing for the live side of a shadow map.
// Keys implement Hashable and a HashFunc turns them into the string digest
// the ordered map is indexed by.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/amp-labs/shadowmap/errors"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the XXH3 digest of the given Hashable, hex-encoded.
// It is the default HashFunc for shadow maps.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash digest of the given Hashable, hex-encoded.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

var hashFuncs = map[string]HashFunc{ //nolint:gochecknoglobals
	"sha256":   Sha256,
	"xxh3":     Xxh3,
	"xxhash64": XXHash64,
}

// Lookup resolves a hash function by name, case-insensitively.
func Lookup(name string) (HashFunc, error) {
	fn, ok := hashFuncs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownHash, name)
	}

	return fn, nil
}

// Names lists the names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(hashFuncs))

	for name := range hashFuncs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
