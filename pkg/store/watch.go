package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the persisted preferences
// change underneath a running process, e.g. a CLI add while the UI is
// open.
type Event struct{}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid blocking the watcher. The channel
// is closed once ctx is done or the watcher encounters an unrecoverable
// error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.logger.Warn("store: watcher close", "error", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// refresh picks up the change anyway. This keeps
				// filesystem storms from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers redraw
// once per burst of filesystem activity instead of on every single write.
// SavePrefs always touches two files back to back.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(send func(Event)) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if pending {
		send(Event{})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
