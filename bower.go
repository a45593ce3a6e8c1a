package bower

import (
	"log/slog"

	"github.com/aretw0/bower/internal/platform"
	"github.com/aretw0/bower/pkg/core"
)

// --- Types ---

// Notebook is a public alias for the core tree store.
type Notebook = core.Notebook

// Note is a public alias for the note entity.
type Note = core.Note

// NoteVersion is a public alias for a note's historical snapshot.
type NoteVersion = core.Version

// Directory is a public alias for the directory entity.
type Directory = core.Directory

// TreeNode is a public alias for the recursive tree projection.
type TreeNode = core.TreeNode

// NoteRef is a public alias for the note summary carried by a TreeNode.
type NoteRef = core.NoteRef

// Store is a public alias for the persistence contract.
type Store = core.Store

// Event is a public alias for a backing-store change event.
type Event = core.Event

// RootID is the reserved identifier of the root directory.
const RootID = core.RootID

// --- Configuration ---

// Option defines a functional option for configuring bower.
type Option = platform.Option

// WithLogger sets the logger for the notebook and its store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithMustExist ensures the store file must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithStrictLoad makes a corrupt store file fail startup instead of being
// discarded with a warning.
func WithStrictLoad(strict bool) Option {
	return platform.WithStrictLoad(strict)
}

// WithRootName sets the display name of a fresh notebook's root directory.
func WithRootName(name string) Option {
	return platform.WithRootName(name)
}

// WithForceTemp forces the store file into a temporary directory (useful for
// testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the temp-dir sandbox used during `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New opens the notebook persisted at path, creating a fresh root-only
// notebook when the store file does not exist yet.
func New(path string, opts ...Option) (*core.Notebook, error) {
	return platform.New(path, opts...)
}

// Init builds and initializes the storage adapter for path without loading it.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveStorePath determines the actual path for the store file based on
// safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindStore recursively looks upwards from startDir for an existing store
// file.
func FindStore(startDir string) (string, error) {
	return platform.FindStore(startDir)
}
