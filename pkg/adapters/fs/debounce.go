package fs

import (
	"sync"
	"time"

	"github.com/aretw0/bower/pkg/core"
)

// debouncer coalesces bursts of events per file name inside a fixed window.
// Atomic rewrites produce several fsnotify events for one logical change;
// only the last one inside the window is delivered.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	stopped bool
	pending map[string]core.Event
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		pending: make(map[string]core.Event),
		timers:  make(map[string]*time.Timer),
	}
}

// add schedules e for delivery via emit after the window elapses. A newer
// event for the same name replaces the pending one and restarts the window.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[e.Name] = e
	if t, ok := d.timers[e.Name]; ok {
		t.Reset(d.window)
		return
	}

	name := e.Name
	d.wg.Add(1)
	d.timers[name] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if _, armed := d.timers[name]; !armed {
			// A Reset raced with an earlier firing of this timer; that
			// firing already delivered and released the slot.
			d.mu.Unlock()
			return
		}
		e, ok := d.pending[name]
		delete(d.pending, name)
		delete(d.timers, name)
		stopped := d.stopped
		d.mu.Unlock()

		// The WaitGroup must cover the delivery itself, not just the timer:
		// stopAndWait callers close the event channel right after it returns.
		defer d.wg.Done()
		if ok && !stopped {
			emit(e)
		}
	})
}

// stopAndWait stops accepting new events and waits, up to timeout, for
// in-flight timers to finish so emit is never called after shutdown.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for name, t := range d.timers {
		if t.Stop() {
			// Timer cancelled before firing; its callback never runs.
			d.wg.Done()
			delete(d.timers, name)
			delete(d.pending, name)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
