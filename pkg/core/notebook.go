package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Config holds the wiring for a Notebook.
type Config struct {
	Store      Store        // nil means in-memory only (no persistence)
	Logger     *slog.Logger // nil defaults to slog.Default()
	RootName   string       // display name of the root directory, defaults to "Root"
	StrictLoad bool         // corrupt snapshots fail Load instead of falling back to a fresh store
}

// Notebook owns every note and directory and is the single source of truth for
// the tree. Entities reference each other by id only and every relation is
// resolved through the notebook's maps, so there are no ownership pointers to
// dangle after a delete or move. Each mutating operation re-derives the
// affected invariants and flushes the full store through the Store
// (write-through) before returning.
//
// The notebook serializes its public operations with an internal lock. It is a
// single-process, single-writer structure; it must not be shared with other
// processes writing the same backing store.
type Notebook struct {
	mu     sync.RWMutex
	store  Store
	logger *slog.Logger
	config Config

	notes map[string]*Note
	dirs  map[string]*Directory
}

// NewNotebook creates an empty notebook containing only the root directory.
// Call Load to adopt persisted state.
func NewNotebook(cfg Config) *Notebook {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RootName == "" {
		cfg.RootName = "Root"
	}
	nb := &Notebook{
		store:  cfg.Store,
		logger: cfg.Logger,
		config: cfg,
	}
	nb.reset()
	return nb
}

// reset discards all state, leaving only a fresh root directory.
func (nb *Notebook) reset() {
	nb.notes = make(map[string]*Note)
	nb.dirs = map[string]*Directory{
		RootID: NewDirectory(RootID, nb.config.RootName, "", 0),
	}
}

// Load reads the backing store and replaces the in-memory state with it.
// An absent store leaves the fresh root-only state in place. A snapshot that
// fails to parse or validate is logged as a warning and discarded the same
// way, unless StrictLoad is set, in which case Load returns the error and the
// notebook keeps its previous state.
func (nb *Notebook) Load(ctx context.Context) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	if nb.store == nil {
		return nil
	}

	snap, err := nb.store.Load(ctx)
	if err != nil {
		return nb.discardCorrupt(err)
	}
	if snap == nil {
		nb.reset()
		return nil
	}
	if err := snap.Validate(); err != nil {
		return nb.discardCorrupt(fmt.Errorf("%w: %s", ErrCorruptStore, err))
	}

	notes := make(map[string]*Note, len(snap.Notes))
	for id, r := range snap.Notes {
		n, err := NoteFromRecord(r)
		if err != nil {
			return nb.discardCorrupt(fmt.Errorf("%w: %s", ErrCorruptStore, err))
		}
		notes[id] = n
	}
	dirs := make(map[string]*Directory, len(snap.Directories))
	for id, r := range snap.Directories {
		d, err := DirectoryFromRecord(r)
		if err != nil {
			return nb.discardCorrupt(fmt.Errorf("%w: %s", ErrCorruptStore, err))
		}
		dirs[id] = d
	}
	if _, ok := dirs[RootID]; !ok {
		dirs[RootID] = NewDirectory(RootID, nb.config.RootName, "", 0)
	}

	nb.notes = notes
	nb.dirs = dirs
	nb.pruneDanglingNotesLocked()
	nb.renumberAllLocked()
	return nil
}

func (nb *Notebook) discardCorrupt(err error) error {
	if nb.config.StrictLoad {
		return err
	}
	nb.logger.Warn("discarding unreadable notebook store, starting fresh", "error", err)
	nb.reset()
	return nil
}

// pruneDanglingNotesLocked drops note ids that no longer resolve to a note.
// Views filter these anyway; pruning on load keeps the persisted lists honest.
func (nb *Notebook) pruneDanglingNotesLocked() {
	for _, d := range nb.dirs {
		kept := d.Notes[:0]
		for _, id := range d.Notes {
			if _, ok := nb.notes[id]; ok {
				kept = append(kept, id)
			} else {
				nb.logger.Warn("pruning dangling note reference", "directory", d.ID, "note", id)
			}
		}
		d.Notes = kept
	}
}

// Reload re-reads the backing store, discarding in-memory state. Pair it with
// Watch to follow edits made to the store file by other processes.
func (nb *Notebook) Reload(ctx context.Context) error {
	return nb.Load(ctx)
}

// Flush rewrites the entire backing store from the in-memory state. Mutating
// operations flush implicitly; Flush exists for hosts that injected state via
// records or want to force a write (e.g. `init`).
func (nb *Notebook) Flush(ctx context.Context) error {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.flushLocked(ctx)
}

func (nb *Notebook) flushLocked(ctx context.Context) error {
	if nb.store == nil {
		return nil
	}
	if err := nb.store.Save(ctx, nb.snapshotLocked()); err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}
	return nil
}

// Snapshot exports the complete state as typed records, for persistence or
// external sync layers.
func (nb *Notebook) Snapshot() *Snapshot {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	return nb.snapshotLocked()
}

func (nb *Notebook) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		Notes:       make(map[string]NoteRecord, len(nb.notes)),
		Directories: make(map[string]DirectoryRecord, len(nb.dirs)),
	}
	for id, n := range nb.notes {
		snap.Notes[id] = n.Record()
	}
	for id, d := range nb.dirs {
		snap.Directories[id] = d.Record()
	}
	return snap
}

// Watch surfaces external-change events from the backing store, if the store
// supports watching.
func (nb *Notebook) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := nb.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// --- Notes ---

// CreateNote allocates a new note inside dirID and persists the store. An
// empty or unknown dirID falls back to the root directory. The title must not
// be blank.
func (nb *Notebook) CreateNote(ctx context.Context, dirID, title, content string) (Note, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return Note{}, fmt.Errorf("%w: note title must not be empty", ErrInvalidArgument)
	}

	n := NewNote(NewID(), title, content)
	nb.notes[n.ID] = n

	dir, ok := nb.dirs[dirID]
	if !ok {
		dir = nb.dirs[RootID]
	}
	dir.AddNote(n.ID)

	return n.clone(), nb.flushLocked(ctx)
}

// UpdateNote replaces a note's title and content. When snapshot is true and a
// value changed, the pre-update state is kept as a new version. Modified is
// refreshed either way.
func (nb *Notebook) UpdateNote(ctx context.Context, noteID, title, content string, snapshot bool) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	n, ok := nb.notes[noteID]
	if !ok {
		return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: note title must not be empty", ErrInvalidArgument)
	}

	n.Update(title, content, snapshot)
	return nb.flushLocked(ctx)
}

// DeleteNote removes a note from the notebook and from every directory that
// references it. The scan over all directories is deliberate: it also clears
// any transient double-reference instead of trusting a single owner.
func (nb *Notebook) DeleteNote(ctx context.Context, noteID string) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	if !nb.removeNoteLocked(noteID) {
		return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	return nb.flushLocked(ctx)
}

func (nb *Notebook) removeNoteLocked(noteID string) bool {
	if _, ok := nb.notes[noteID]; !ok {
		return false
	}
	for _, d := range nb.dirs {
		d.RemoveNote(noteID)
	}
	delete(nb.notes, noteID)
	return true
}

// Note returns a copy of the note with the given id.
func (nb *Notebook) Note(noteID string) (Note, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	n, ok := nb.notes[noteID]
	if !ok {
		return Note{}, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	return n.clone(), nil
}

// SnapshotNote appends a manual checkpoint of the note's current state to its
// version history.
func (nb *Notebook) SnapshotNote(ctx context.Context, noteID string) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	n, ok := nb.notes[noteID]
	if !ok {
		return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	n.Snapshot()
	return nb.flushLocked(ctx)
}

// RestoreNoteVersion overwrites the note's current title and content with the
// version at index. The history itself is left intact.
func (nb *Notebook) RestoreNoteVersion(ctx context.Context, noteID string, index int) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	n, ok := nb.notes[noteID]
	if !ok {
		return fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	if err := n.Restore(index); err != nil {
		return err
	}
	return nb.flushLocked(ctx)
}

// NoteVersions returns a copy of the note's version history, oldest first.
func (nb *Notebook) NoteVersions(noteID string) ([]Version, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	n, ok := nb.notes[noteID]
	if !ok {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}
	return append([]Version(nil), n.Versions...), nil
}

// --- Directories ---

// CreateDirectory allocates a new directory under parentID and persists the
// store. An empty or unknown parentID falls back to the root. The new
// directory is appended at the end of its parent's children.
func (nb *Notebook) CreateDirectory(ctx context.Context, name, parentID string) (Directory, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return Directory{}, fmt.Errorf("%w: directory name must not be empty", ErrInvalidArgument)
	}

	parent, ok := nb.dirs[parentID]
	if !ok {
		parent = nb.dirs[RootID]
	}

	d := NewDirectory(NewID(), name, parent.ID, len(parent.Children))
	nb.dirs[d.ID] = d
	parent.AddChild(d.ID)

	return d.clone(), nb.flushLocked(ctx)
}

// RenameDirectory changes a directory's display name.
func (nb *Notebook) RenameDirectory(ctx context.Context, dirID, name string) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	d, ok := nb.dirs[dirID]
	if !ok {
		return fmt.Errorf("%w: directory %s", ErrNotFound, dirID)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: directory name must not be empty", ErrInvalidArgument)
	}
	d.Name = name
	return nb.flushLocked(ctx)
}

// MoveDirectory re-parents dirID under newParentID, appending it at the end of
// the new parent's children. A move that would make a directory its own
// ancestor (including any move of the root) is rejected with ErrCycle, since
// an unguarded move would detach the subtree from the root permanently.
func (nb *Notebook) MoveDirectory(ctx context.Context, dirID, newParentID string) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	d, ok := nb.dirs[dirID]
	if !ok {
		return fmt.Errorf("%w: directory %s", ErrNotFound, dirID)
	}
	newParent, ok := nb.dirs[newParentID]
	if !ok {
		return fmt.Errorf("%w: directory %s", ErrNotFound, newParentID)
	}

	// Walk the destination's ancestor chain up to the root; meeting dirID
	// means the destination lives inside the subtree being moved.
	for cursor := newParent; cursor != nil; cursor = nb.dirs[cursor.ParentID] {
		if cursor.ID == dirID {
			return fmt.Errorf("%w: directory %s is an ancestor of %s", ErrCycle, dirID, newParentID)
		}
		if cursor.ParentID == "" {
			break
		}
	}

	if oldParent, ok := nb.dirs[d.ParentID]; ok {
		oldParent.RemoveChild(dirID)
		nb.renumberLocked(oldParent)
	}
	d.ParentID = newParent.ID
	newParent.AddChild(dirID)
	nb.renumberLocked(newParent)

	return nb.flushLocked(ctx)
}

// ReorderDirectories replaces the child order of parentID. The sequence must
// be a permutation of the current children; otherwise nothing changes and the
// call fails.
func (nb *Notebook) ReorderDirectories(ctx context.Context, parentID string, sequence []string) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	parent, ok := nb.dirs[parentID]
	if !ok {
		return fmt.Errorf("%w: directory %s", ErrNotFound, parentID)
	}
	if err := parent.ReorderChildren(sequence); err != nil {
		return err
	}
	nb.renumberLocked(parent)
	return nb.flushLocked(ctx)
}

// DeleteDirectory removes dirID and its entire directory subtree. With cascade
// true, every note in the subtree is deleted as well. With cascade false, each
// deleted directory's own notes are re-parented into the root directory while
// the directory structure is still torn down. The root cannot be deleted.
func (nb *Notebook) DeleteDirectory(ctx context.Context, dirID string, cascade bool) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	if dirID == RootID {
		return fmt.Errorf("%w: the root directory cannot be deleted", ErrInvalidArgument)
	}
	d, ok := nb.dirs[dirID]
	if !ok {
		return fmt.Errorf("%w: directory %s", ErrNotFound, dirID)
	}

	nb.deleteDirectoryLocked(d, cascade)
	return nb.flushLocked(ctx)
}

func (nb *Notebook) deleteDirectoryLocked(d *Directory, cascade bool) {
	if cascade {
		for _, noteID := range append([]string(nil), d.Notes...) {
			nb.removeNoteLocked(noteID)
		}
	} else {
		root := nb.dirs[RootID]
		for _, noteID := range d.Notes {
			if _, ok := nb.notes[noteID]; ok {
				root.AddNote(noteID)
			}
		}
	}

	for _, childID := range append([]string(nil), d.Children...) {
		if child, ok := nb.dirs[childID]; ok {
			nb.deleteDirectoryLocked(child, cascade)
		}
	}

	if parent, ok := nb.dirs[d.ParentID]; ok {
		parent.RemoveChild(d.ID)
		nb.renumberLocked(parent)
	}
	delete(nb.dirs, d.ID)
}

// Directory returns a copy of the directory with the given id.
func (nb *Notebook) Directory(dirID string) (Directory, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	d, ok := nb.dirs[dirID]
	if !ok {
		return Directory{}, fmt.Errorf("%w: directory %s", ErrNotFound, dirID)
	}
	return d.clone(), nil
}

// renumberLocked re-derives the Order hint of parent's children from their
// position, keeping the hint consistent with the authoritative sequence.
func (nb *Notebook) renumberLocked(parent *Directory) {
	for i, childID := range parent.Children {
		if child, ok := nb.dirs[childID]; ok {
			child.Order = i
		}
	}
}

func (nb *Notebook) renumberAllLocked() {
	for _, d := range nb.dirs {
		nb.renumberLocked(d)
	}
}
