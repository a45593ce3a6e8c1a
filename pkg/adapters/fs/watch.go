package fs

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/bower/pkg/core"
)

// selfQuiet is the window after one of our own saves during which events on
// the store file are treated as echoes of that save and dropped.
const selfQuiet = 250 * time.Millisecond

// Watch reports changes made to the snapshot file by other processes. Events
// are debounced, the store's own atomic writes are filtered out, and the
// channel closes when ctx is cancelled. The pattern, when non-empty, is a
// doublestar glob matched against changed file names relative to the store
// directory; empty means only the store file itself.
//
// Watch implements core.Watchable.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// fsnotify watches directories reliably across platforms; watching the
	// file directly breaks on the rename that our atomic writes perform.
	dir := filepath.Dir(s.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(50 * time.Millisecond)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer s.setWatcherActive(false)

		for {
			select {
			case <-ctx.Done():
				deb.stopAndWait(5 * time.Second)
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					deb.stopAndWait(5 * time.Second)
					return nil
				}
				if s.shouldIgnore(ev, pattern) {
					continue
				}
				eType := mapEventType(ev)
				if eType == "" {
					continue
				}
				e := core.Event{
					Type:      eType,
					Name:      filepath.Base(ev.Name),
					Timestamp: time.Now().Unix(),
				}
				deb.add(e, func(e core.Event) {
					select {
					case events <- e:
					case <-ctx.Done():
					}
				})

			case werr, ok := <-watcher.Errors:
				if !ok {
					deb.stopAndWait(5 * time.Second)
					return nil
				}
				s.log().Error("fsnotify error", "error", werr)
			}
		}
	})

	return events, nil
}

func (s *Store) shouldIgnore(ev fsnotify.Event, pattern string) bool {
	base := filepath.Base(ev.Name)

	// Our own in-flight atomic writes.
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}

	if pattern == "" {
		if base != filepath.Base(s.Path) {
			return true
		}
	} else {
		rel, err := filepath.Rel(filepath.Dir(s.Path), ev.Name)
		if err != nil {
			return true
		}
		matched, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil || !matched {
			return true
		}
	}

	// The rename at the end of our own Save lands as an event on the store
	// file; drop events inside the quiet window so hosts don't reload state
	// they just wrote.
	if base == filepath.Base(s.Path) && time.Since(s.lastSaveAt()) < selfQuiet {
		return true
	}

	return false
}

func mapEventType(ev fsnotify.Event) core.EventType {
	switch {
	case ev.Has(fsnotify.Create):
		return core.EventCreate
	case ev.Has(fsnotify.Write), ev.Has(fsnotify.Rename):
		return core.EventModify
	case ev.Has(fsnotify.Remove):
		return core.EventDelete
	default:
		return ""
	}
}

func (s *Store) log() *slog.Logger {
	if s.config.Logger != nil {
		return s.config.Logger
	}
	return slog.Default()
}
