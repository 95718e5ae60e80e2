package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		boom := errors.New("boom") //nolint:err113

		c.Add(boom)

		assert.Same(t, boom, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		first := errors.New("first")   //nolint:err113
		second := errors.New("second") //nolint:err113

		c.Add(first)
		c.Add(nil)
		c.Add(second)

		err := c.GetError()
		require.Error(t, err)
		assert.Equal(t, 2, c.Len())
		require.ErrorIs(t, err, first)
		require.ErrorIs(t, err, second)
	})

	t.Run("clear resets", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrUnknownHash)
		c.Clear()

		assert.False(t, c.HasError())
		assert.NoError(t, c.GetError())
	})
}
