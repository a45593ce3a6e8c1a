package core

import "fmt"

// Directory is a named tree node. It holds ordered id lists for its child
// directories and for the notes it contains directly; the entities themselves
// live in the Notebook maps and are resolved by id, never by pointer.
type Directory struct {
	ID       string
	Name     string
	ParentID string // empty for the root
	Order    int    // sibling position hint; the parent's Children sequence is authoritative
	Children []string
	Notes    []string
}

// NewDirectory constructs a directory with empty child and note lists.
func NewDirectory(id, name, parentID string, order int) *Directory {
	return &Directory{
		ID:       id,
		Name:     name,
		ParentID: parentID,
		Order:    order,
	}
}

// AddChild appends childID to the child sequence if it is not already present.
func (d *Directory) AddChild(childID string) {
	if indexOf(d.Children, childID) < 0 {
		d.Children = append(d.Children, childID)
	}
}

// AddChildAt appends childID if absent and then moves it to the given position,
// clamped to the valid range.
func (d *Directory) AddChildAt(childID string, order int) {
	d.AddChild(childID)
	d.SetChildOrder(childID, order)
}

// RemoveChild removes childID from the child sequence. Absent child: no-op.
func (d *Directory) RemoveChild(childID string) {
	d.Children = remove(d.Children, childID)
}

// SetChildOrder moves an existing child to the given index, clamped to the
// valid range. Absent child: no-op.
func (d *Directory) SetChildOrder(childID string, order int) {
	if indexOf(d.Children, childID) < 0 {
		return
	}
	rest := remove(d.Children, childID)
	if order < 0 {
		order = 0
	}
	if order >= len(rest) {
		d.Children = append(rest, childID)
		return
	}
	out := make([]string, 0, len(rest)+1)
	out = append(out, rest[:order]...)
	out = append(out, childID)
	out = append(out, rest[order:]...)
	d.Children = out
}

// ReorderChildren replaces the child sequence wholesale. The new sequence must
// be a permutation of the current one (same ids, same cardinality); anything
// else is rejected and the directory is left unchanged, so a bad sequence can
// never drop or duplicate a child reference.
func (d *Directory) ReorderChildren(sequence []string) error {
	if len(sequence) != len(d.Children) {
		return fmt.Errorf("%w: reorder sequence has %d entries, directory has %d children",
			ErrInvalidArgument, len(sequence), len(d.Children))
	}
	counts := make(map[string]int, len(d.Children))
	for _, id := range d.Children {
		counts[id]++
	}
	for _, id := range sequence {
		counts[id]--
		if counts[id] < 0 {
			return fmt.Errorf("%w: reorder sequence is not a permutation of the current children", ErrInvalidArgument)
		}
	}
	d.Children = append([]string(nil), sequence...)
	return nil
}

// AddNote appends noteID to the note list if it is not already present.
func (d *Directory) AddNote(noteID string) {
	if indexOf(d.Notes, noteID) < 0 {
		d.Notes = append(d.Notes, noteID)
	}
}

// RemoveNote removes noteID from the note list. Absent note: no-op.
func (d *Directory) RemoveNote(noteID string) {
	d.Notes = remove(d.Notes, noteID)
}

// clone returns a deep copy safe to hand to readers outside the notebook lock.
func (d *Directory) clone() Directory {
	out := *d
	out.Children = append([]string(nil), d.Children...)
	out.Notes = append([]string(nil), d.Notes...)
	return out
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

func remove(s []string, v string) []string {
	i := indexOf(s, v)
	if i < 0 {
		return s
	}
	return append(s[:i], s[i+1:]...)
}
