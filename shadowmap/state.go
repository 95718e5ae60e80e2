package shadowmap

// State is the synchronization state of a Map.
type State int

const (
	// StateEmpty is the initial state and the state after ClearAll.
	StateEmpty State = iota
	// StateLiveDirty means the live map changed since the last hook; shadows are stale.
	StateLiveDirty
	// StateShadowSynced holds right after PrepareForPersistence.
	StateShadowSynced
	// StateMapSynced holds right after RestoreFromPersistence.
	StateMapSynced
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLiveDirty:
		return "live-dirty"
	case StateShadowSynced:
		return "shadow-synced"
	case StateMapSynced:
		return "map-synced"
	default:
		return "unknown"
	}
}
