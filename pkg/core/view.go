package core

import (
	"fmt"
	"sort"
	"time"
)

// Read-only projections consumed by presentation layers. Every projection is
// recomputed fresh from the current state and shares no memory with the
// notebook, so callers may hold results across later mutations.

// NoteRef is the note summary carried by a TreeNode.
type NoteRef struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Modified time.Time `json:"modified_time"`
}

// TreeNode is a recursive snapshot of a directory subtree.
type TreeNode struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Order    int         `json:"order"`
	Notes    []NoteRef   `json:"notes"`
	Children []*TreeNode `json:"children"`
}

// ListNotesInDirectory returns the notes directly contained in dirID, most
// recently modified first. This is a display order, distinct from the
// directory's stored insertion order. Note ids that no longer resolve are
// skipped.
func (nb *Notebook) ListNotesInDirectory(dirID string) ([]Note, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	d, ok := nb.dirs[dirID]
	if !ok {
		return nil, fmt.Errorf("%w: directory %s", ErrNotFound, dirID)
	}

	notes := make([]Note, 0, len(d.Notes))
	for _, noteID := range d.Notes {
		if n, ok := nb.notes[noteID]; ok {
			notes = append(notes, n.clone())
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Modified.After(notes[j].Modified)
	})
	return notes, nil
}

// Subdirectories returns copies of the existing children of dirID in sibling
// order. The parent's child sequence is authoritative; the Order field always
// mirrors it.
func (nb *Notebook) Subdirectories(dirID string) ([]Directory, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	d, ok := nb.dirs[dirID]
	if !ok {
		return nil, fmt.Errorf("%w: directory %s", ErrNotFound, dirID)
	}

	subs := make([]Directory, 0, len(d.Children))
	for _, childID := range d.Children {
		if child, ok := nb.dirs[childID]; ok {
			subs = append(subs, child.clone())
		}
	}
	return subs, nil
}

// DirectoryTree builds the recursive tree snapshot rooted at startID, or at
// the root directory when startID is empty.
func (nb *Notebook) DirectoryTree(startID string) (*TreeNode, error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()

	if startID == "" {
		startID = RootID
	}
	d, ok := nb.dirs[startID]
	if !ok {
		return nil, fmt.Errorf("%w: directory %s", ErrNotFound, startID)
	}
	return nb.treeLocked(d), nil
}

func (nb *Notebook) treeLocked(d *Directory) *TreeNode {
	node := &TreeNode{
		ID:       d.ID,
		Name:     d.Name,
		Order:    d.Order,
		Notes:    []NoteRef{},
		Children: []*TreeNode{},
	}
	for _, noteID := range d.Notes {
		if n, ok := nb.notes[noteID]; ok {
			node.Notes = append(node.Notes, NoteRef{ID: n.ID, Title: n.Title, Modified: n.Modified})
		}
	}
	for _, childID := range d.Children {
		if child, ok := nb.dirs[childID]; ok {
			node.Children = append(node.Children, nb.treeLocked(child))
		}
	}
	return node
}
