package core

import "context"

// Store defines the persistence contract for a notebook. The notebook is the
// single writer and only ever exchanges whole snapshots: every mutating
// operation flushes the full store (write-through, no batching), and Load
// replaces the complete in-memory state. Adhering to this interface keeps the
// core independent of the storage mechanism (single JSON file, SQL, S3, ...).
type Store interface {
	// Load reads the persisted snapshot. A nil snapshot with a nil error means
	// the backing store does not exist yet.
	Load(ctx context.Context) (*Snapshot, error)

	// Save overwrites the backing store with the full snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// parent directory of the store file).
	Initialize(ctx context.Context) error
}

// Watchable defines an optional Store extension that reports changes made to
// the backing store by other processes.
type Watchable interface {
	// Watch emits an event whenever the backing store changes externally.
	// The pattern is a glob filter over changed file names; empty means only
	// the store file itself.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
