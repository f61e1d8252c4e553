// Package watcher re-verifies s-Java files as they change on disk
package watcher

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// Matcher selects files by path relative to the watched root
type Matcher interface {
	Match(rel string) bool
	ExcludesDir(rel string) bool
}

// Watcher collects file events under one root and hands the changed paths
// to a callback once no event has arrived for the debounce period.
// Callbacks never run concurrently.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	root       string
	matcher    Matcher
	debounce   time.Duration
	onChange   func([]string)
	callbackMu sync.Mutex

	pending   map[string]struct{}
	pendingMu sync.Mutex
	timer     *time.Timer
	done      chan struct{}
}

// NewWatcher creates a watcher. onChange is required.
func NewWatcher(root string, matcher Matcher, debounce time.Duration, onChange func([]string)) (*Watcher, error) {
	if onChange == nil {
		return nil, os.ErrInvalid
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		root:      root,
		matcher:   matcher,
		debounce:  debounce,
		onChange:  onChange,
		pending:   make(map[string]struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Start registers every directory under root and begins processing events
func (w *Watcher) Start() error {
	if err := w.watchRecursive(w.root); err != nil {
		return err
	}
	go w.run()
	return nil
}

// Done is closed when the event loop exits
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) watchRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if w.excludedDir(path) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if w.excludedDir(event.Name) {
				return
			}
			if err := w.watchRecursive(event.Name); err != nil {
				log.Warn().Err(err).Str("path", event.Name).Msg("failed to watch new directory")
				return
			}
			w.enqueueExisting(event.Name)
			return
		}
	}

	if !w.selected(event.Name) {
		return
	}

	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.schedule(event.Name)
	}
}

func (w *Watcher) schedule(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending[path] = struct{}{}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)

	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()
	w.onChange(paths)
}

func (w *Watcher) rel(path string) (string, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", false
	}
	return rel, true
}

func (w *Watcher) excludedDir(path string) bool {
	rel, ok := w.rel(path)
	if !ok || rel == "." || w.matcher == nil {
		return false
	}
	return w.matcher.ExcludesDir(rel)
}

func (w *Watcher) selected(path string) bool {
	rel, ok := w.rel(path)
	if !ok {
		return false
	}
	if w.matcher == nil {
		return filepath.Ext(path) == verifier.Extension
	}
	return w.matcher.Match(rel)
}

func (w *Watcher) enqueueExisting(dir string) {
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		if w.selected(path) {
			w.schedule(path)
		}
		return nil
	})
}

// Close stops the watcher
func (w *Watcher) Close() error {
	w.pendingMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pendingMu.Unlock()
	return w.fsWatcher.Close()
}
