// Package watch rebuilds the site whenever the source document changes.
//
// Word saves documents through temp files and renames, so a single save
// surfaces as a burst of filesystem events. The watcher observes the source
// document's directory and debounces the burst down to one rebuild.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/fsnotify.v1"

	"github.com/nointernetrex/publix-deals/pkg/site"
)

// DefaultDebounce is how long the watcher waits after the last relevant
// event before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watcher rebuilds the site when the configured source document changes.
type Watcher struct {
	builder  *site.Builder
	debounce time.Duration

	// OnBuild, if set, is called after every rebuild attempt with its
	// result or error.
	OnBuild func(*site.BuildResult, error)

	fs       *fsnotify.Watcher
	stopChan chan struct{}
}

// New returns a watcher for the builder's source document.
func New(builder *site.Builder) *Watcher {
	return &Watcher{
		builder:  builder,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides the debounce interval. Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching and returns immediately; rebuilds run on a
// background goroutine until Stop is called.
func (w *Watcher) Start() error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	source := w.builder.Config().Source
	dir := filepath.Dir(source)
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.fs = fs
	w.stopChan = make(chan struct{})

	go w.loop(filepath.Base(source))
	return nil
}

// Stop stops watching. Safe to call once after a successful Start.
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.fs.Close()
}

func (w *Watcher) loop(base string) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				// Drain a pending expiry before Reset so a stale fire
				// does not trigger an extra rebuild.
				if !timer.Stop() {
					select {
					case <-fire:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			result, err := w.builder.Build()
			if w.OnBuild != nil {
				w.OnBuild(result, err)
			}

		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event still rebuilds.

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}
