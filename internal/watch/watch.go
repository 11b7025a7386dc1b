// Package watch reports changes to a single file using fsnotify.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by operations on a closed Watcher.
var ErrClosed = errors.New("watcher is closed")

// DefaultDebounce coalesces bursts of events from editors that write a
// file in several syscalls.
const DefaultDebounce = 100 * time.Millisecond

// Watcher delivers a notification each time the watched file changes.
// Rename and remove are reported alongside writes because many editors
// save through a temp-file-and-rename cycle.
type Watcher struct {
	path     string
	debounce time.Duration

	fw     *fsnotify.Watcher
	events chan struct{}
	errs   chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching the file at path. The watch is registered on the
// parent directory so the file stays watched across rename cycles.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fw:       fw,
		events:   make(chan struct{}, 1),
		errs:     make(chan error, 16),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Events returns the channel that receives one value per (debounced)
// change to the watched file. The channel is closed when the watcher is.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors returns the channel that receives watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	close(w.events)
	close(w.errs)
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			// Restart the quiet-period timer on every matching event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
				// A pending notification already covers this change.
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Create) ||
		ev.Op.Has(fsnotify.Rename) ||
		ev.Op.Has(fsnotify.Remove)
}
