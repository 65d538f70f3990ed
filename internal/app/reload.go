package app

import (
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/ui"
	"folio/internal/watcher"
)

// newContentWatcher watches a content file, or the content files of a
// content directory.
func newContentWatcher(path string, debounceMs int) (*watcher.Watcher, error) {
	cfg := watcher.DefaultConfig()
	if debounceMs > 0 {
		cfg.DebounceMs = debounceMs
	}
	if isDir(path) {
		cfg.Filter = content.IsContentFile
	}
	return watcher.New(path, cfg)
}

// Reload reloads the content at path after changes and reports the result
// as a message for the UI. A failed reload carries the error so the
// previous content stays on screen.
func Reload(path string, changes []watcher.Change) ui.ContentChangedMsg {
	paths := make([]string, len(changes))
	for i, c := range changes {
		paths[i] = c.Path
	}

	p, err := content.Load(path)
	if err != nil {
		logging.Warn("content reload failed", "path", path, "changes", len(changes), "error", err)
		return ui.ContentChangedMsg{Paths: paths, Err: err}
	}
	logging.Debug("content reloaded", "path", path, "changes", len(changes), "projects", len(p.Projects))
	return ui.ContentChangedMsg{Portfolio: p, Paths: paths}
}
