package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNoteRecordRoundTrip(t *testing.T) {
	n := NewNote("n1", "hello", "v0")
	n.Update("hello", "v1", true)

	restored, err := NoteFromRecord(n.Record())
	if err != nil {
		t.Fatalf("NoteFromRecord failed: %v", err)
	}

	if restored.ID != "n1" || restored.Content != "v1" {
		t.Errorf("unexpected note: %+v", restored)
	}
	if len(restored.Versions) != 1 || restored.Versions[0].Content != "v0" {
		t.Errorf("unexpected versions: %+v", restored.Versions)
	}
}

func TestNoteFromRecordRejects(t *testing.T) {
	t.Run("Missing Id", func(t *testing.T) {
		_, err := NoteFromRecord(NoteRecord{Title: "no id"})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("Version History Out Of Order", func(t *testing.T) {
		now := time.Now()
		_, err := NoteFromRecord(NoteRecord{
			ID: "n1",
			Versions: []VersionRecord{
				{Title: "b", VersionTime: now},
				{Title: "a", VersionTime: now.Add(-time.Hour)},
			},
		})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestDirectoryRecordRoundTrip(t *testing.T) {
	t.Run("Root Has Nil Parent", func(t *testing.T) {
		root := NewDirectory(RootID, "Root", "", 0)
		r := root.Record()
		if r.ParentID != nil {
			t.Errorf("expected nil parent for root, got %q", *r.ParentID)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		d := NewDirectory("d1", "Dir", RootID, 2)
		d.AddChild("c1")
		d.AddNote("n1")

		restored, err := DirectoryFromRecord(d.Record())
		if err != nil {
			t.Fatalf("DirectoryFromRecord failed: %v", err)
		}
		if restored.ParentID != RootID || restored.Order != 2 {
			t.Errorf("unexpected directory: %+v", restored)
		}
		if len(restored.Children) != 1 || len(restored.Notes) != 1 {
			t.Errorf("unexpected lists: children=%v notes=%v", restored.Children, restored.Notes)
		}
	})
}

// validSnapshot builds root -> d1 with one note in d1.
func validSnapshot() *Snapshot {
	d1Parent := RootID
	return &Snapshot{
		Notes: map[string]NoteRecord{
			"n1": {ID: "n1", Title: "hello"},
		},
		Directories: map[string]DirectoryRecord{
			RootID: {ID: RootID, Name: "Root", Children: []string{"d1"}},
			"d1":   {ID: "d1", Name: "Dir", ParentID: &d1Parent, Notes: []string{"n1"}},
		},
	}
}

func TestSnapshotValidate(t *testing.T) {
	t.Run("Accepts Valid Snapshot", func(t *testing.T) {
		if err := validSnapshot().Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
	})

	t.Run("Accepts Empty Snapshot", func(t *testing.T) {
		s := &Snapshot{Notes: map[string]NoteRecord{}, Directories: map[string]DirectoryRecord{}}
		if err := s.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
	})

	t.Run("Allows Dangling Note Ids", func(t *testing.T) {
		s := validSnapshot()
		delete(s.Notes, "n1")
		if err := s.Validate(); err != nil {
			t.Fatalf("dangling note ids should pass validation, got %v", err)
		}
	})

	failures := map[string]func(*Snapshot){
		"Note Key Mismatch": func(s *Snapshot) {
			s.Notes["other"] = NoteRecord{ID: "n1"}
		},
		"Directory Key Mismatch": func(s *Snapshot) {
			s.Directories["other"] = s.Directories["d1"]
		},
		"Notes Without Directories": func(s *Snapshot) {
			s.Directories = map[string]DirectoryRecord{}
		},
		"Missing Root": func(s *Snapshot) {
			delete(s.Directories, RootID)
		},
		"Root With Parent": func(s *Snapshot) {
			p := "d1"
			r := s.Directories[RootID]
			r.ParentID = &p
			s.Directories[RootID] = r
		},
		"Unknown Child": func(s *Snapshot) {
			r := s.Directories[RootID]
			r.Children = append(r.Children, "ghost")
			s.Directories[RootID] = r
		},
		"Child Parent Mismatch": func(s *Snapshot) {
			d := s.Directories["d1"]
			other := "d2"
			d.ParentID = &other
			s.Directories["d1"] = d
		},
		"Duplicate Children": func(s *Snapshot) {
			r := s.Directories[RootID]
			r.Children = []string{"d1", "d1"}
			s.Directories[RootID] = r
		},
		"Duplicate Notes": func(s *Snapshot) {
			d := s.Directories["d1"]
			d.Notes = []string{"n1", "n1"}
			s.Directories["d1"] = d
		},
		"Note Owned Twice": func(s *Snapshot) {
			r := s.Directories[RootID]
			r.Notes = []string{"n1"}
			s.Directories[RootID] = r
		},
		"Unreachable Directory": func(s *Snapshot) {
			r := s.Directories[RootID]
			r.Children = nil
			s.Directories[RootID] = r
			d := s.Directories["d1"]
			p := "d1"
			d.ParentID = &p
			d.Children = []string{"d1"}
			s.Directories["d1"] = d
		},
	}

	for name, corrupt := range failures {
		t.Run("Rejects "+name, func(t *testing.T) {
			s := validSnapshot()
			corrupt(s)
			if err := s.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestSnapshotValidateMessage(t *testing.T) {
	s := validSnapshot()
	delete(s.Directories, RootID)

	err := s.Validate()
	if err == nil || !strings.Contains(err.Error(), "root") {
		t.Errorf("expected root error, got %v", err)
	}
}
