package core

import (
	"fmt"
	"time"
)

// Version is an immutable historical copy of a note's title and content at a
// point in time.
type Version struct {
	Title   string
	Content string
	Time    time.Time
}

// Note is a titled text document with an append-only version history.
// Notes are owned by the Notebook; directories refer to them by id only.
type Note struct {
	ID       string
	Title    string
	Content  string
	Created  time.Time
	Modified time.Time
	Versions []Version
}

// NewNote constructs a note with both timestamps set to now and no history.
func NewNote(id, title, content string) *Note {
	now := time.Now()
	return &Note{
		ID:       id,
		Title:    title,
		Content:  content,
		Created:  now,
		Modified: now,
	}
}

// Update replaces the note's title and content. When snapshot is true and
// either value actually changes, the pre-update state is appended to Versions
// first, so the old content is preserved exactly when it would otherwise be
// lost. Modified is refreshed even if the values are unchanged.
func (n *Note) Update(title, content string, snapshot bool) {
	if snapshot && (n.Title != title || n.Content != content) {
		n.Snapshot()
	}
	n.Title = title
	n.Content = content
	n.Modified = time.Now()
}

// Snapshot appends the current state to the version history as a manual
// checkpoint. It always grows Versions by one, even if nothing changed since
// the last entry.
func (n *Note) Snapshot() {
	n.Versions = append(n.Versions, Version{
		Title:   n.Title,
		Content: n.Content,
		Time:    time.Now(),
	})
}

// Restore replaces the current title and content with the version at index and
// refreshes Modified. Past versions are kept; a caller that wants the
// overwritten state preserved must call Update with snapshotting first.
func (n *Note) Restore(index int) error {
	if index < 0 || index >= len(n.Versions) {
		return fmt.Errorf("%w: version index %d out of range [0,%d)", ErrInvalidArgument, index, len(n.Versions))
	}
	v := n.Versions[index]
	n.Title = v.Title
	n.Content = v.Content
	n.Modified = time.Now()
	return nil
}

// clone returns a deep copy safe to hand to readers outside the notebook lock.
func (n *Note) clone() Note {
	out := *n
	out.Versions = append([]Version(nil), n.Versions...)
	return out
}
