package core

import "errors"

// Common errors. Callers match them with errors.Is; operations wrap them with
// the offending id or field so failures stay actionable.
var (
	// ErrNotFound reports an operation that referenced an id the notebook does not hold.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports malformed input: an empty required field, a version
	// index outside the history, or a reorder sequence that is not a permutation of
	// the current children.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCycle reports a directory move that would make a directory its own
	// ancestor and detach its subtree from the root.
	ErrCycle = errors.New("move would create a cycle")

	// ErrPersistence reports that an in-memory mutation succeeded but the
	// write-through flush to the backing store did not. The caller holds the
	// only durable copy at that point.
	ErrPersistence = errors.New("persistence failure")

	// ErrCorruptStore reports a persisted snapshot that failed to parse or that
	// violates the structural invariants of the tree.
	ErrCorruptStore = errors.New("corrupt store")
)
