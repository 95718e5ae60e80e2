package shadowmap

import "github.com/amp-labs/shadowmap/hashing"

// Stock instantiations. They add no behavior.

type (
	CharKeyMap[V any] = Map[hashing.HashableRune, V]
	CharFloatMap      = CharKeyMap[float32]
	CharStringMap     = CharKeyMap[string]

	StringKeyMap[V any]  = Map[hashing.HashableString, V]
	StringStringMap      = StringKeyMap[string]
	StringStringArrayMap = StringKeyMap[StringArray]
	StringBoolMap        = StringKeyMap[bool]
	StringIntMap         = StringKeyMap[int]
	StringFloatMap       = StringKeyMap[float32]
	StringAnyMap         = StringKeyMap[any]

	IntStringMap = Map[hashing.HashableInt, string]
	IntFloatMap  = Map[hashing.HashableInt, float32]

	FloatStringMap = Map[hashing.HashableFloat32, string]
	FloatIntMap    = Map[hashing.HashableFloat32, int]
)
