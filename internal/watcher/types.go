package watcher

import "time"

// Operation represents the type of file system operation.
type Operation int

const (
	OpCreate Operation = iota
	OpModify
	OpDelete
	OpRename
)

// String returns the string representation of the operation.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Change is one debounced file change.
type Change struct {
	Path      string
	Operation Operation
	Time      time.Time
}

// Config holds file watcher configuration.
type Config struct {
	DebounceMs int
	MaxWatches int
	// Filter reports whether a path (relative to the watched root) is
	// relevant. Nil accepts every file.
	Filter func(rel string) bool
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		DebounceMs: 300,
		MaxWatches: 256,
	}
}

// ChangeHandler receives the changes that settled during one debounce window.
type ChangeHandler func(changes []Change)

// Stats holds watcher statistics.
type Stats struct {
	Running      bool
	WatchedPaths int
	Batches      int64
}
