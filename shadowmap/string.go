package shadowmap

import (
	"fmt"
	"strings"
)

// String renders the live entries, one bracketed line per entry in iteration
// order:
//
//	Dictionary:
//	{
//		[ Key: a, Value: 1 ]
//	}
//
// Keys and values are formatted with %v, so a fmt.Stringer controls its own text.
func (m *Map[K, V]) String() string {
	var builder strings.Builder

	builder.WriteString("Dictionary: \n{\n")

	for key, value := range m.All() {
		fmt.Fprintf(&builder, "\t[ Key: %v, Value: %v ]\n", key, value)
	}

	builder.WriteString("}")

	return builder.String()
}
