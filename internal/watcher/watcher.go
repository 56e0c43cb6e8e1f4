package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"playlist-gen/internal/logging"
	"playlist-gen/internal/playlist"
)

// DefaultDebounce is the default quiet period between a filesystem change and
// the regeneration it triggers.
const DefaultDebounce = 2 * time.Second

// Watcher regenerates a playlist whenever any of its source trees change.
//
// Changes are debounced: a burst of events (a file copy, an unpacked album)
// results in a single regeneration once the tree has been quiet for the
// debounce interval.
type Watcher struct {
	spec     playlist.Spec
	debounce time.Duration
	stop     chan struct{}
	stopOnce sync.Once

	// regenerate is swapped out in tests.
	regenerate func(playlist.Spec) error
}

// New creates a Watcher for spec. A non-positive debounce selects
// DefaultDebounce.
func New(spec playlist.Spec, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		spec:       spec,
		debounce:   debounce,
		stop:       make(chan struct{}),
		regenerate: playlist.Generate,
	}
}

// Stop terminates Run. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Run watches the spec's source trees and regenerates the playlist after each
// debounced batch of changes. It blocks until Stop is called or the watcher
// cannot be set up. Regeneration failures are logged, not fatal: a transient
// state mid-copy should not kill watch mode.
func (w *Watcher) Run() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addWatches(fsw); err != nil {
		return err
	}
	logging.Info("Watching %d source tree(s) for changes (debounce %v)", len(w.spec.SourceDirs), w.debounce)

	timer := time.NewTimer(w.debounce)
	stopTimer(timer)

	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			logging.Debug("Change detected: %s (%s)", ev.Name, ev.Op)
			stopTimer(timer)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Warn("Watch error: %v", err)

		case <-timer.C:
			if err := w.regenerate(w.spec); err != nil {
				logging.Error("Regeneration failed: %v", err)
				continue
			}
			// New subdirectories need their own watches.
			if err := w.addWatches(fsw); err != nil {
				logging.Warn("Failed to refresh watches: %v", err)
			}

		case <-w.stop:
			return nil
		}
	}
}

// addWatches registers every directory under the source trees. fsnotify
// watches are not recursive, so each subdirectory needs its own watch; adding
// an already-watched directory is a no-op. Hidden subdirectories are skipped,
// matching the scanner.
func (w *Watcher) addWatches(fsw *fsnotify.Watcher) error {
	for _, dir := range w.spec.SourceDirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return nil
}

// relevant filters out event types that cannot change playlist contents.
func relevant(ev fsnotify.Event) bool {
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// stopTimer stops t and drains a pending fire so a following Reset starts
// from a clean state.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
