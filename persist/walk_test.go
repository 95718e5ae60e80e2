package persist

import (
	"testing"

	"github.com/amp-labs/shadowmap/shadowmap"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	log  *[]string

	Children []*recorder
	Inline   []recorder
}

func (r *recorder) PrepareForPersistence() error {
	*r.log = append(*r.log, "prepare:"+r.name)

	return nil
}

func (r *recorder) RestoreFromPersistence() error {
	*r.log = append(*r.log, "restore:"+r.name)

	return nil
}

func newTree(log *[]string) *recorder {
	leaf := &recorder{name: "leaf", log: log}

	return &recorder{
		name:     "root",
		log:      log,
		Children: []*recorder{leaf, leaf, nil},
		Inline:   []recorder{{name: "inline", log: log}},
	}
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	t.Run("pre-order runs parents first", func(t *testing.T) {
		t.Parallel()

		var log []string

		calls, err := walk(newTree(&log), preOrder, Hooks.PrepareForPersistence)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []string{"prepare:root", "prepare:leaf", "prepare:inline"}, log)
	})

	t.Run("post-order runs children first", func(t *testing.T) {
		t.Parallel()

		var log []string

		calls, err := walk(newTree(&log), postOrder, Hooks.RestoreFromPersistence)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []string{"restore:leaf", "restore:inline", "restore:root"}, log)
	})

	t.Run("cycles are visited once", func(t *testing.T) {
		t.Parallel()

		var log []string

		root := &recorder{name: "root", log: &log}
		root.Children = []*recorder{root}

		calls, err := walk(root, preOrder, Hooks.PrepareForPersistence)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("values passed by value are not addressable", func(t *testing.T) {
		t.Parallel()

		var log []string

		calls, err := walk(recorder{name: "copy", log: &log}, preOrder, Hooks.PrepareForPersistence)
		require.NoError(t, err)
		assert.Equal(t, 0, calls)
		assert.Empty(t, log)
	})

	t.Run("nil root", func(t *testing.T) {
		t.Parallel()

		calls, err := walk(nil, preOrder, Hooks.PrepareForPersistence)
		require.NoError(t, err)
		assert.Equal(t, 0, calls)
	})
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(operationsTotal.WithLabelValues("save", "yaml", "success"))

	var log []string

	_, err := Save(t.Context(), YAML, newTree(&log))
	require.NoError(t, err)

	after := testutil.ToFloat64(operationsTotal.WithLabelValues("save", "yaml", "success"))
	assert.GreaterOrEqual(t, after-before, 1.0)
	assert.Positive(t, testutil.ToFloat64(hooksTotal.WithLabelValues("prepare")))
}

type roster struct {
	Named map[string]recorder
}

type groups struct {
	Groups map[string]shadowmap.StringIntMap `bson:"groups" json:"groups" msgpack:"groups" yaml:"groups"`
}

func TestWalkMapValues(t *testing.T) {
	t.Parallel()

	t.Run("hooks run on map-held values", func(t *testing.T) {
		t.Parallel()

		var log []string

		r := &roster{Named: map[string]recorder{"x": {name: "x", log: &log}}}

		calls, err := walk(r, preOrder, Hooks.PrepareForPersistence)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{"prepare:x"}, log)
	})

	t.Run("shadow maps inside a map round-trip", func(t *testing.T) {
		t.Parallel()

		var g shadowmap.StringIntMap

		require.NoError(t, g.Set("a", 1))
		require.NoError(t, g.Set("b", 2))

		original := &groups{Groups: map[string]shadowmap.StringIntMap{"g": g}}

		data, err := Save(t.Context(), JSON, original)
		require.NoError(t, err)
		assert.JSONEq(t, `{"groups":{"g":{"keys":["a","b"],"values":[1,2]}}}`, string(data))

		var loaded groups

		require.NoError(t, Load(t.Context(), JSON, data, &loaded))

		inner := loaded.Groups["g"]
		assert.Equal(t, 2, inner.Len())
		assert.Equal(t, shadowmap.StateMapSynced, inner.State())

		b, found, err := inner.Get("b")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, b)
	})
}
