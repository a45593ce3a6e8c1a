package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/bower/pkg/adapters/fs"
	"github.com/aretw0/bower/pkg/core"
)

func setupStore(t *testing.T, opts ...func(*fs.Config)) (*fs.Store, string) {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bower.json")

	cfg := fs.Config{Path: path}
	for _, opt := range opts {
		opt(&cfg)
	}

	return fs.NewStore(cfg), path
}

func sampleSnapshot() *core.Snapshot {
	parent := core.RootID
	return &core.Snapshot{
		Notes: map[string]core.NoteRecord{
			"n1": {ID: "n1", Title: "hello", Content: "world"},
		},
		Directories: map[string]core.DirectoryRecord{
			core.RootID: {ID: core.RootID, Name: "Root", Children: []string{"d1"}},
			"d1":        {ID: "d1", Name: "Work", ParentID: &parent, Notes: []string{"n1"}},
		},
	}
}

func TestStoreInitialize(t *testing.T) {
	t.Run("Creates Parent Directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		store := fs.NewStore(fs.Config{Path: filepath.Join(tmpDir, "nested", "bower.json")})

		if err := store.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(tmpDir, "nested")); os.IsNotExist(err) {
			t.Error("expected parent directory to be created")
		}
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		store, _ := setupStore(t, func(c *fs.Config) { c.MustExist = true })

		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail when file is missing and MustExist=true")
		}
	})

	t.Run("Passes if MustExist and Present", func(t *testing.T) {
		store, path := setupStore(t, func(c *fs.Config) { c.MustExist = true })
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := store.Initialize(context.Background()); err != nil {
			t.Errorf("Initialize failed: %v", err)
		}
	})

	t.Run("Fails if Path Is a Directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		store := fs.NewStore(fs.Config{Path: tmpDir, MustExist: true})

		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail on a directory path")
		}
	})
}

func TestStoreLoad(t *testing.T) {
	t.Run("Missing File Yields Nil", func(t *testing.T) {
		store, _ := setupStore(t)

		snap, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if snap != nil {
			t.Errorf("expected nil snapshot for missing file, got %+v", snap)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		store, _ := setupStore(t)
		want := sampleSnapshot()

		if err := store.Save(context.Background(), want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected a snapshot, got nil")
		}
		if got.Notes["n1"].Content != "world" {
			t.Errorf("unexpected note content: %+v", got.Notes["n1"])
		}
		if len(got.Directories) != 2 {
			t.Errorf("expected 2 directories, got %d", len(got.Directories))
		}
		if err := got.Validate(); err != nil {
			t.Errorf("loaded snapshot fails validation: %v", err)
		}
	})

	t.Run("Corrupt File", func(t *testing.T) {
		store, path := setupStore(t)
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		_, err := store.Load(context.Background())
		if !errors.Is(err, core.ErrCorruptStore) {
			t.Errorf("expected ErrCorruptStore, got %v", err)
		}
	})
}

func TestStoreSave(t *testing.T) {
	t.Run("Leaves No Temp Files", func(t *testing.T) {
		store, path := setupStore(t)

		if err := store.Save(context.Background(), sampleSnapshot()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), fs.TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Writes Indented JSON", func(t *testing.T) {
		store, path := setupStore(t)

		if err := store.Save(context.Background(), sampleSnapshot()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		s := string(data)
		if !strings.Contains(s, "\"notes\"") || !strings.Contains(s, "\n  ") {
			t.Errorf("unexpected file layout:\n%s", s)
		}
	})

	t.Run("Overwrites Previous Snapshot", func(t *testing.T) {
		store, _ := setupStore(t)
		ctx := context.Background()

		if err := store.Save(ctx, sampleSnapshot()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		empty := &core.Snapshot{
			Notes:       map[string]core.NoteRecord{},
			Directories: map[string]core.DirectoryRecord{core.RootID: {ID: core.RootID, Name: "Root"}},
		}
		if err := store.Save(ctx, empty); err != nil {
			t.Fatalf("Second Save failed: %v", err)
		}

		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got.Notes) != 0 {
			t.Errorf("expected notes to be gone, got %d", len(got.Notes))
		}
	})
}
