// Package lifecycle bridges notebook store events into the generic
// lifecycle.Source contract so supervised hosts can consume them alongside
// their other event sources.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/bower/pkg/core"
)

// Action tells a host what to do about a store change.
type Action string

const (
	// ActionReload means the store file was rewritten; re-read it.
	ActionReload Action = "reload"
	// ActionReset means the store file is gone; fall back to a fresh
	// root-only notebook (Reload does this when the file is absent).
	ActionReset Action = "reset"
)

// Change is the lifecycle event emitted by the bridge: the raw store event
// plus the response it calls for, so hosts don't each re-derive the mapping
// from event types.
type Change struct {
	core.Event
	Action Action
}

func (c Change) String() string {
	return fmt.Sprintf("%s (%s)", c.Event.String(), c.Action)
}

func actionFor(t core.EventType) Action {
	if t == core.EventDelete {
		return ActionReset
	}
	return ActionReload
}

type storeSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource wraps a notebook event channel (as returned by Notebook.Watch) in
// a lifecycle.Source emitting Change events.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &storeSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storeSource) Start(ctx context.Context) error {
	// The bridge goroutine is tracked by lifecycle.Go so the supervisor can
	// account for it during shutdown.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				change := Change{Event: e, Action: actionFor(e.Type)}
				select {
				case s.out <- change:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
