package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := StoreState{
		Path:          s.Path,
		WatcherActive: s.watcherActive,
	}
	if !s.lastSave.IsZero() {
		t := s.lastSave
		state.LastSave = &t
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSave = time.Now()
}

func (s *Store) lastSaveAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSave
}
