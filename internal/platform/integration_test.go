package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/bower"
	"github.com/aretw0/bower/pkg/core"
)

func setupNotebook(t *testing.T, opts ...bower.Option) (*core.Notebook, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bower.json")

	nb, err := bower.New(path, opts...)
	if err != nil {
		t.Fatalf("Failed to open notebook: %v", err)
	}
	return nb, path
}

func TestNew_CreatesStoreOnFirstWrite(t *testing.T) {
	nb, path := setupNotebook(t)
	ctx := context.TODO()

	// Opening alone must not create the file.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("store file should not exist before the first write")
	}

	if _, err := nb.CreateNote(ctx, "", "first", "note"); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("store file was not created at %s", path)
	}
}

func TestNew_ReopensPersistedState(t *testing.T) {
	nb, path := setupNotebook(t)
	ctx := context.TODO()

	d, err := nb.CreateDirectory(ctx, "Work", "")
	if err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	n, err := nb.CreateNote(ctx, d.ID, "hello", "world")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	reopened, err := bower.New(path)
	if err != nil {
		t.Fatalf("Failed to reopen notebook: %v", err)
	}

	got, err := reopened.Note(n.ID)
	if err != nil {
		t.Fatalf("Note failed after reopen: %v", err)
	}
	if got.Content != "world" {
		t.Errorf("expected content 'world', got '%s'", got.Content)
	}
}

func TestNew_MustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bower.json")

	if _, err := bower.New(path, bower.WithMustExist(true)); err == nil {
		t.Error("expected New to fail for a missing store with MustExist")
	}
}

func TestNew_RootName(t *testing.T) {
	nb, _ := setupNotebook(t, bower.WithRootName("Inbox"))

	root, err := nb.Directory(bower.RootID)
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if root.Name != "Inbox" {
		t.Errorf("expected root name 'Inbox', got '%s'", root.Name)
	}
}

func TestNew_StrictLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bower.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	// Default: corrupt stores are discarded with a warning.
	nb, err := bower.New(path)
	if err != nil {
		t.Fatalf("expected lenient load to succeed, got %v", err)
	}
	if _, err := nb.Directory(bower.RootID); err != nil {
		t.Errorf("expected a fresh root, got %v", err)
	}

	// Strict: the corruption surfaces.
	if _, err := bower.New(path, bower.WithStrictLoad(true)); err == nil {
		t.Error("expected strict load to fail on a corrupt store")
	}
}

func TestInit_InjectedStore(t *testing.T) {
	injected := &staticStore{}

	store, err := bower.Init("ignored.json", bower.WithStore(injected))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if store != core.Store(injected) {
		t.Error("expected the injected store to be returned as is")
	}
}

type staticStore struct{}

func (s *staticStore) Load(ctx context.Context) (*core.Snapshot, error) { return nil, nil }

func (s *staticStore) Save(ctx context.Context, snap *core.Snapshot) error { return nil }

func (s *staticStore) Initialize(ctx context.Context) error { return nil }
