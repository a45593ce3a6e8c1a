package bower_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/bower"
)

// Example_basic demonstrates how to open a notebook, create a note inside a
// directory, and read the tree back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "bower-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Open the notebook. The store file is created on the first write.
	nb, err := bower.New(filepath.Join(tmpDir, "bower.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Create a directory and a note inside it
	dir, err := nb.CreateDirectory(ctx, "Journal", "")
	if err != nil {
		log.Fatal(err)
	}
	note, err := nb.CreateNote(ctx, dir.ID, "First entry", "Hello from bower.")
	if err != nil {
		log.Fatal(err)
	}

	// 2. Read it back
	got, err := nb.Note(note.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found note: %s\n", got.Title)

	// 3. Project the tree
	tree, err := nb.DirectoryTree("")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s has %d subdirectories\n", tree.Name, len(tree.Children))
	// Output:
	// Found note: First entry
	// Root has 1 subdirectories
}

// Example_versions demonstrates the version history of a note.
func Example_versions() {
	tmpDir, err := os.MkdirTemp("", "bower-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	nb, err := bower.New(filepath.Join(tmpDir, "bower.json"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	note, err := nb.CreateNote(ctx, "", "Draft", "hello")
	if err != nil {
		log.Fatal(err)
	}

	// Saving with snapshotting keeps the previous state as a version.
	if err := nb.UpdateNote(ctx, note.ID, "Draft", "world", true); err != nil {
		log.Fatal(err)
	}

	// Restore brings the old content back; the history survives.
	if err := nb.RestoreNoteVersion(ctx, note.ID, 0); err != nil {
		log.Fatal(err)
	}

	got, err := nb.Note(note.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Content: %s (versions: %d)\n", got.Content, len(got.Versions))
	// Output:
	// Content: hello (versions: 1)
}
