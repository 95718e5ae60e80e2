package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmOverwrite(t *testing.T) {
	t.Parallel()

	var asked string

	ask := func(label string) (bool, error) {
		asked = label

		return false, nil
	}

	ok, err := ConfirmOverwrite(ask, "out.yaml")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Overwrite out.yaml", asked)

	boom := errors.New("no tty")

	_, err = ConfirmOverwrite(func(string) (bool, error) { return false, boom }, "x")
	require.ErrorIs(t, err, boom)

	ok, err = ConfirmOverwrite(Always, "x")
	require.NoError(t, err)
	assert.True(t, ok)
}
