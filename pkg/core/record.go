package core

import (
	"fmt"
	"time"
)

// Typed persistence records. The persisted layout is a JSON document with two
// id-keyed maps:
//
//	{
//	  "notes":       { "<note_id>": NoteRecord, ... },
//	  "directories": { "<dir_id>":  DirectoryRecord, ... }
//	}
//
// Records exist so external persistence or sync layers can serialize entities
// without reaching into notebook internals, and so loads are validated against
// an explicit schema instead of coerced from loose maps.

// VersionRecord is the persisted form of a Version.
type VersionRecord struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	VersionTime time.Time `json:"version_time"`
}

// NoteRecord is the persisted form of a Note.
type NoteRecord struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Created  time.Time       `json:"created_time"`
	Modified time.Time       `json:"modified_time"`
	Versions []VersionRecord `json:"versions"`
}

// DirectoryRecord is the persisted form of a Directory.
type DirectoryRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ParentID *string  `json:"parent_id"` // nil for the root
	Order    int      `json:"order"`
	Children []string `json:"children"`
	Notes    []string `json:"notes"`
}

// Snapshot is the complete persisted state of a notebook.
type Snapshot struct {
	Notes       map[string]NoteRecord      `json:"notes"`
	Directories map[string]DirectoryRecord `json:"directories"`
}

// Record returns the persistable form of the note.
func (n *Note) Record() NoteRecord {
	versions := make([]VersionRecord, 0, len(n.Versions))
	for _, v := range n.Versions {
		versions = append(versions, VersionRecord{Title: v.Title, Content: v.Content, VersionTime: v.Time})
	}
	return NoteRecord{
		ID:       n.ID,
		Title:    n.Title,
		Content:  n.Content,
		Created:  n.Created,
		Modified: n.Modified,
		Versions: versions,
	}
}

// NoteFromRecord reconstructs a note from its persisted form. The version
// history must be oldest-first: version times may never decrease.
func NoteFromRecord(r NoteRecord) (*Note, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("%w: note record has no id", ErrInvalidArgument)
	}
	versions := make([]Version, 0, len(r.Versions))
	for i, v := range r.Versions {
		if i > 0 && v.VersionTime.Before(r.Versions[i-1].VersionTime) {
			return nil, fmt.Errorf("%w: note %s has version history out of order at index %d", ErrInvalidArgument, r.ID, i)
		}
		versions = append(versions, Version{Title: v.Title, Content: v.Content, Time: v.VersionTime})
	}
	return &Note{
		ID:       r.ID,
		Title:    r.Title,
		Content:  r.Content,
		Created:  r.Created,
		Modified: r.Modified,
		Versions: versions,
	}, nil
}

// Record returns the persistable form of the directory.
func (d *Directory) Record() DirectoryRecord {
	var parent *string
	if d.ParentID != "" {
		p := d.ParentID
		parent = &p
	}
	return DirectoryRecord{
		ID:       d.ID,
		Name:     d.Name,
		ParentID: parent,
		Order:    d.Order,
		Children: append([]string(nil), d.Children...),
		Notes:    append([]string(nil), d.Notes...),
	}
}

// DirectoryFromRecord reconstructs a directory from its persisted form.
func DirectoryFromRecord(r DirectoryRecord) (*Directory, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("%w: directory record has no id", ErrInvalidArgument)
	}
	parentID := ""
	if r.ParentID != nil {
		parentID = *r.ParentID
	}
	return &Directory{
		ID:       r.ID,
		Name:     r.Name,
		ParentID: parentID,
		Order:    r.Order,
		Children: append([]string(nil), r.Children...),
		Notes:    append([]string(nil), r.Notes...),
	}, nil
}

// Validate checks the structural invariants of a snapshot before a notebook
// adopts it:
//
//   - map keys match the embedded record ids
//   - the root directory, if any directories exist, is present with no parent
//   - every non-root directory's parent exists and lists it among its children
//     exactly once
//   - child and note id lists carry no duplicates, and every child entry
//     resolves to a directory whose parent is this directory
//   - every directory is reachable from the root (the graph is a tree)
//   - a note id is owned by at most one directory
//
// Dangling note ids (listed in a directory but absent from the notes map) are
// not an error here; the notebook prunes them with a warning on load.
func (s *Snapshot) Validate() error {
	for id, r := range s.Notes {
		if id != r.ID {
			return fmt.Errorf("note map key %q does not match record id %q", id, r.ID)
		}
	}
	if len(s.Directories) == 0 {
		if len(s.Notes) > 0 {
			return fmt.Errorf("snapshot has notes but no directories")
		}
		return nil
	}

	root, ok := s.Directories[RootID]
	if !ok {
		return fmt.Errorf("snapshot has no root directory %q", RootID)
	}
	if root.ParentID != nil && *root.ParentID != "" {
		return fmt.Errorf("root directory has parent %q", *root.ParentID)
	}

	noteOwner := make(map[string]string)
	for id, r := range s.Directories {
		if id != r.ID {
			return fmt.Errorf("directory map key %q does not match record id %q", id, r.ID)
		}
		if err := noDuplicates(r.Children); err != nil {
			return fmt.Errorf("directory %s children: %w", id, err)
		}
		if err := noDuplicates(r.Notes); err != nil {
			return fmt.Errorf("directory %s notes: %w", id, err)
		}
		for _, child := range r.Children {
			c, ok := s.Directories[child]
			if !ok {
				return fmt.Errorf("directory %s lists unknown child %s", id, child)
			}
			if c.ParentID == nil || *c.ParentID != id {
				return fmt.Errorf("directory %s lists child %s whose parent is not %s", id, child, id)
			}
		}
		if id != RootID {
			if r.ParentID == nil || *r.ParentID == "" {
				return fmt.Errorf("directory %s has no parent", id)
			}
			parent, ok := s.Directories[*r.ParentID]
			if !ok {
				return fmt.Errorf("directory %s has unknown parent %s", id, *r.ParentID)
			}
			if count(parent.Children, id) != 1 {
				return fmt.Errorf("directory %s appears %d times in parent %s", id, count(parent.Children, id), *r.ParentID)
			}
		}
		for _, note := range r.Notes {
			if owner, taken := noteOwner[note]; taken {
				return fmt.Errorf("note %s owned by both %s and %s", note, owner, id)
			}
			noteOwner[note] = id
		}
	}

	// Reachability from the root catches cycles and detached subtrees.
	visited := make(map[string]bool, len(s.Directories))
	stack := []string{RootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, s.Directories[id].Children...)
	}
	if len(visited) != len(s.Directories) {
		return fmt.Errorf("%d of %d directories are not reachable from the root", len(s.Directories)-len(visited), len(s.Directories))
	}

	return nil
}

func noDuplicates(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("duplicate id %s", id)
		}
		seen[id] = true
	}
	return nil
}

func count(ids []string, v string) int {
	n := 0
	for _, id := range ids {
		if id == v {
			n++
		}
	}
	return n
}
