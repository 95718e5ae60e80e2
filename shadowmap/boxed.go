package shadowmap

// Boxed wraps a slice in a struct so it can be used as a Map value. Field-list
// encoders persist Values as a sequence, and some of them cannot nest a
// sequence directly inside another one; a struct element with a single field
// can always be encoded.
type Boxed[T any] struct {
	Array []T `bson:"array" json:"array" msgpack:"array" yaml:"array"`
}

// StringArray is the boxed form of []string.
type StringArray = Boxed[string]

// Box wraps items.
func Box[T any](items ...T) Boxed[T] {
	return Boxed[T]{Array: items}
}

// Len returns the number of boxed items.
func (b Boxed[T]) Len() int {
	return len(b.Array)
}
