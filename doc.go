// Package bower is the Composition Root for the bower library.
//
// It connects the core tree store (Domain Layer) with the persistence
// adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// bower is a hierarchical note store: a mutable tree of directories holding
// notes and sub-directories, with manual sibling ordering, per-note version
// snapshots and whole-store persistence. The notebook owns every entity and
// resolves all relations by id, so moves and deletes can never leave a
// dangling ownership pointer, and every mutation is flushed to the backing
// store before it returns.
//
// Features:
//
//   - **Hexagonal Architecture**: the tree store never touches storage details.
//   - **Write-Through Persistence**: each mutation atomically rewrites the
//     full snapshot file (temp file + rename).
//   - **Version History**: notes keep append-only snapshots of past states
//     and can be restored to any of them.
//   - **Typed Records**: explicit, validated persistence schema instead of
//     loose maps.
//   - **Reactivity**: the default adapter can watch the store file and report
//     external changes for reload.
//
// Usage:
//
//	// Open (or create) a notebook backed by a snapshot file
//	nb, err := bower.New("./notes/bower.json",
//		bower.WithLogger(logger),
//	)
//
//	// Create a directory and a note inside it
//	dir, err := nb.CreateDirectory(ctx, "Ideas", bower.RootID)
//	note, err := nb.CreateNote(ctx, dir.ID, "First", "hello")
package bower
