package hashing

import (
	"encoding/binary"
	"hash"
	"math"
	"strconv"
)

// The Hashable* types below are the key types the stock shadow map aliases
// are instantiated with. Each one hashes its own bytes and compares with ==.

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableRune is a single character key.
type HashableRune rune

func (r HashableRune) String() string {
	return string(r)
}

func (r HashableRune) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(r))
}

func (r HashableRune) Equals(other HashableRune) bool {
	return r == other
}

type HashableBool bool

func (b HashableBool) String() string {
	return strconv.FormatBool(bool(b))
}

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var v byte
	if b {
		v = 1
	}

	_, err := h.Write([]byte{v})

	return err
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}

type HashableInt int

func (i HashableInt) String() string {
	return strconv.Itoa(int(i))
}

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec // bit pattern only
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

type HashableInt32 int32

func (i HashableInt32) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i HashableInt32) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec // bit pattern only
}

func (i HashableInt32) Equals(other HashableInt32) bool {
	return i == other
}

type HashableInt64 int64

func (i HashableInt64) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, uint64(i)) //nolint:gosec // bit pattern only
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

// HashableFloat32 hashes the IEEE-754 bits of the value. Negative zero is
// folded into positive zero and every NaN into one canonical NaN, and all
// NaNs are the same key, so a map holds at most one NaN entry.
type HashableFloat32 float32

func (f HashableFloat32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (f HashableFloat32) UpdateHash(h hash.Hash) error {
	v := float32(f)

	switch {
	case v == 0:
		v = 0
	case math.IsNaN(float64(v)):
		v = float32(math.NaN())
	}

	return writeUint64(h, uint64(math.Float32bits(v)))
}

func (f HashableFloat32) Equals(other HashableFloat32) bool {
	return f == other || (math.IsNaN(float64(f)) && math.IsNaN(float64(other)))
}

// HashableFloat64 follows the same rules as HashableFloat32.
type HashableFloat64 float64

func (f HashableFloat64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	v := float64(f)

	switch {
	case v == 0:
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}

	return writeUint64(h, math.Float64bits(v))
}

func (f HashableFloat64) Equals(other HashableFloat64) bool {
	return f == other || (math.IsNaN(float64(f)) && math.IsNaN(float64(other)))
}

func writeUint64(h hash.Hash, v uint64) error {
	_, err := h.Write(binary.BigEndian.AppendUint64(nil, v))

	return err
}
