// Package fs persists a notebook as a single JSON snapshot file.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/bower/pkg/core"
)

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string // the snapshot file, e.g. "bower.json"
	MustExist bool   // refuse to start against a missing file
	Logger    *slog.Logger
}

// Store implements core.Store on a single snapshot file. Every save rewrites
// the whole file atomically: the snapshot goes to a temp file in the same
// directory first and is renamed over the target.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      time.Time
}

// NewStore creates a new filesystem-backed snapshot store.
func NewStore(config Config) *Store {
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the parent directory of the snapshot file exists, or,
// with MustExist, that the file itself does.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store file does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("store path is a directory: %s", s.Path)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot file. A missing file yields (nil, nil)
// so the notebook starts fresh; a file that does not parse is reported as a
// corrupt store.
func (s *Store) Load(ctx context.Context) (*core.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var snap core.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrCorruptStore, s.Path, err)
	}
	return &snap, nil
}

// Save overwrites the snapshot file atomically.
func (s *Store) Save(ctx context.Context, snap *core.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	s.recordSave()
	return nil
}
