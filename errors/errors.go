// Package errors holds the sentinel errors shared across shadowmap packages
// and a small accumulator for operations that can fail more than once.
package errors

import "errors"

var (
	// ErrUnknownHash is returned when a hash function name cannot be resolved.
	ErrUnknownHash = errors.New("unknown hash function")

	// ErrUnknownCodec is returned when a codec name cannot be resolved.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrNotPointer is returned when a decode target is not a non-nil pointer.
	ErrNotPointer = errors.New("target must be a non-nil pointer")

	// ErrHookFailed wraps failures raised by persistence hooks.
	ErrHookFailed = errors.New("persistence hook failed")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when every element of a batch must be visited even if some fail.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
