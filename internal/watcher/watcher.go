// Package watcher reports debounced changes to a content file or directory.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"folio/internal/logging"
)

// Watcher monitors a content file or directory tree for changes.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	root       string // directory being watched
	file       string // set when watching a single file
	filter     func(rel string) bool
	debounceMs int
	maxWatches int
	onChange   ChangeHandler
	pending    map[string]time.Time
	batches    int64
	mu         sync.Mutex
	done       chan struct{}
	wg         sync.WaitGroup
	running    bool
	stopOnce   sync.Once
}

// New creates a watcher for path, which may be a file or a directory.
// A single file is watched through its parent directory so that editors
// which replace the file on save are still seen.
func New(path string, cfg Config) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounceMs := cfg.DebounceMs
	if debounceMs <= 0 {
		debounceMs = DefaultConfig().DebounceMs
	}

	maxWatches := cfg.MaxWatches
	if maxWatches <= 0 {
		maxWatches = DefaultConfig().MaxWatches
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		root:       abs,
		filter:     cfg.Filter,
		debounceMs: debounceMs,
		maxWatches: maxWatches,
		pending:    make(map[string]time.Time),
		done:       make(chan struct{}),
	}
	if !info.IsDir() {
		w.root = filepath.Dir(abs)
		w.file = abs
	}
	return w, nil
}

// OnChange sets the callback for settled changes.
func (w *Watcher) OnChange(handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = handler
}

// Start begins watching for file changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addDirectories(); err != nil {
		return err
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.processDebounce()

	logging.Debug("content watcher started", "root", w.root, "watches", w.WatchedPaths())
	return nil
}

// Stop stops watching and waits for the event goroutines to exit.
// Stop is safe to call more than once, and before Start.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()

		close(w.done)
		w.wg.Wait()
		err = w.fsWatcher.Close()
	})
	return err
}

// addDirectories registers the root and, when watching a directory,
// every directory below it.
func (w *Watcher) addDirectories() error {
	if w.file != "" {
		return w.fsWatcher.Add(w.root)
	}

	watchCount := 0
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip inaccessible paths
		}
		if !d.IsDir() {
			return nil
		}
		if watchCount >= w.maxWatches {
			return filepath.SkipDir
		}
		if path != w.root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return nil // Don't fail on individual directory errors
		}
		watchCount++
		return nil
	})
}

// processEvents processes raw fsnotify events.
func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Warn("content watcher error", "error", err)
		}
	}
}

// handleEvent handles a single fsnotify event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.file != "" && path != w.file {
		return
	}

	base := filepath.Base(path)
	if isHidden(base) || base[0] == '#' || base[len(base)-1] == '~' {
		return
	}

	// New directories under a watched tree are watched too.
	if w.file == "" && event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			w.mu.Lock()
			if len(w.fsWatcher.WatchList()) < w.maxWatches {
				_ = w.fsWatcher.Add(path)
			}
			w.mu.Unlock()
			return
		}
	}

	if w.filter != nil {
		rel, err := filepath.Rel(w.root, path)
		if err != nil || !w.filter(rel) {
			return
		}
	}

	// Add to pending with current time (for debouncing)
	w.mu.Lock()
	w.pending[path] = time.Now()
	w.mu.Unlock()
}

// processDebounce flushes pending changes every half debounce window.
func (w *Watcher) processDebounce() {
	defer w.wg.Done()
	ticker := time.NewTicker(time.Duration(max(w.debounceMs/2, 1)) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.flushPending()
		}
	}
}

// flushPending delivers paths that have been stable for the debounce window.
func (w *Watcher) flushPending() {
	w.mu.Lock()
	handler := w.onChange
	if handler == nil || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}

	now := time.Now()
	debounce := time.Duration(w.debounceMs) * time.Millisecond
	var changes []Change
	for path, eventTime := range w.pending {
		if now.Sub(eventTime) >= debounce {
			changes = append(changes, Change{Path: path, Operation: detectOperation(path), Time: eventTime})
			delete(w.pending, path)
		}
	}
	if len(changes) > 0 {
		w.batches++
	}
	w.mu.Unlock()

	if len(changes) == 0 {
		return
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	handler(changes)
}

// detectOperation determines the type of operation for a path.
func detectOperation(path string) Operation {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return OpDelete
	}
	// Create and modify are not distinguished without tracking state.
	return OpModify
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// WatchedPaths returns the number of watched paths.
func (w *Watcher) WatchedPaths() int {
	return len(w.fsWatcher.WatchList())
}

// Stats returns watcher statistics.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Stats{
		Running:      w.running,
		WatchedPaths: len(w.fsWatcher.WatchList()),
		Batches:      w.batches,
	}
}
