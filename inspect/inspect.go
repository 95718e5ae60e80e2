// Package inspect is a read-only diagnostic view of shadow maps, for tools
// and debugging. Nothing in the synchronization protocol depends on it.
package inspect

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"facette.io/natsort"
	"github.com/amp-labs/shadowmap/collectable"
	"github.com/amp-labs/shadowmap/shadowmap"
	"github.com/bytedance/sonic"
)

// Field is one live entry exported under the textual form of its key.
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Fields enumerates the live entries of m as name/value pairs in iteration
// order. Distinct keys with the same textual form produce repeated names.
func Fields[K collectable.Collectable[K], V any](m *shadowmap.Map[K, V]) []Field {
	fields := make([]Field, 0, m.Len())

	for key, value := range m.All() {
		fields = append(fields, Field{Name: fmt.Sprint(key), Value: value})
	}

	return fields
}

// SortedFields is Fields ordered by name in natural order, so "item2"
// sorts before "item10".
func SortedFields[K collectable.Collectable[K], V any](m *shadowmap.Map[K, V]) []Field {
	fields := Fields(m)

	sort.SliceStable(fields, func(i, j int) bool {
		return natsort.Compare(fields[i].Name, fields[j].Name)
	})

	return fields
}

// LogValue renders the live entries as an slog group.
//
//	slog.Info("loaded", "scores", inspect.LogValue(scores))
func LogValue[K collectable.Collectable[K], V any](m *shadowmap.Map[K, V]) slog.Value {
	attrs := make([]slog.Attr, 0, m.Len())

	for _, field := range Fields(m) {
		attrs = append(attrs, slog.Any(field.Name, field.Value))
	}

	return slog.GroupValue(attrs...)
}

// Dump writes the fields as indented JSON.
func Dump(w io.Writer, fields []Field) error {
	data, err := sonic.ConfigStd.MarshalIndent(fields, "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}
