package shadowmap

// PrepareForPersistence rebuilds Keys and Values from the live map, one
// index per entry in iteration order. The live map is not touched. Calling it
// twice without an intervening mutation yields identical sequences.
//
// It never fails; the error result lets Map satisfy the hook capability
// persistence frameworks call through.
func (m *Map[K, V]) PrepareForPersistence() error {
	m.init()

	size := m.live.Size()
	m.Keys = make([]K, 0, size)
	m.Values = make([]V, 0, size)

	for _, entry := range m.live.Seq() {
		m.Keys = append(m.Keys, entry.Key)
		m.Values = append(m.Values, entry.Value)
	}

	m.state = StateShadowSynced

	return nil
}

// RestoreFromPersistence rebuilds the live map from Keys and Values.
//
// Only the first min(len(Keys), len(Values)) positions are read; the rest of
// the longer sequence is ignored. Entries are applied in ascending index
// order with overwrite semantics, so a repeated key ends up holding the value
// of its last occurrence while keeping the position of its first. Neither
// condition is reported.
//
// The only possible error is a failure hashing a key, which is returned as is.
// The live map then holds whatever was restored before the failing index.
func (m *Map[K, V]) RestoreFromPersistence() error {
	m.init()
	m.live.Clear()

	n := min(len(m.Keys), len(m.Values))

	for i := range n {
		if err := m.live.Add(m.Keys[i], m.Values[i]); err != nil {
			m.state = StateLiveDirty

			return err
		}
	}

	m.state = StateMapSynced

	return nil
}

// ClearAll empties the live map and both shadow sequences.
func (m *Map[K, V]) ClearAll() {
	m.init()
	m.live.Clear()

	m.Keys = nil
	m.Values = nil
	m.state = StateEmpty
}
