// Package watch reports changes to the input files of a generation run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType is the kind of change seen on a watched file.
type EventType int

const (
	EventCreated EventType = iota + 1
	EventModified
	EventDeleted
	EventRenamed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventDeleted:
		return "deleted"
	case EventRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Event is a debounced change to one watched file.
type Event struct {
	Path string
	Type EventType
}

// DefaultDebounce collapses bursts of writes from editors.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a fixed set of files. The parent directory of each file
// is watched so that editors replacing a file by rename are still seen.
type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	watcher  *fsnotify.Watcher
	events   chan Event
	errors   chan error

	pendingMu sync.Mutex
	pending   map[string]*time.Timer
}

// New creates a watcher for files. A debounce of zero uses DefaultDebounce.
func New(files []string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		files:    make(map[string]bool),
		debounce: debounce,
		watcher:  fsWatcher,
		events:   make(chan Event, 100),
		errors:   make(chan error, 10),
		pending:  make(map[string]*time.Timer),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run forwards events until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.pendingMu.Lock()
	for _, t := range w.pending {
		t.Stop()
	}
	w.pendingMu.Unlock()
	return w.watcher.Close()
}

// Events returns the channel of debounced events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path, err := filepath.Abs(event.Name)
	if err != nil || !w.files[path] {
		return
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = EventDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		eventType = EventRenamed
	default:
		return
	}

	w.schedule(Event{Path: path, Type: eventType})
}

// schedule delivers event once no further change to the same path arrives
// within the debounce interval.
func (w *Watcher) schedule(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if t, ok := w.pending[event.Path]; ok {
		t.Stop()
	}
	w.pending[event.Path] = time.AfterFunc(w.debounce, func() {
		w.pendingMu.Lock()
		delete(w.pending, event.Path)
		w.pendingMu.Unlock()

		select {
		case w.events <- event:
		default:
			// Channel full, drop event
		}
	})
}
