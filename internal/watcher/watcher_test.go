package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(t *testing.T, w *Watcher) <-chan []Change {
	t.Helper()
	ch := make(chan []Change, 16)
	w.OnChange(func(changes []Change) { ch <- changes })
	return ch
}

func waitChanges(t *testing.T, ch <-chan []Change) []Change {
	t.Helper()
	select {
	case changes := <-ch:
		return changes
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return nil
	}
}

func TestWatchSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("profile: {}\n"), 0644))

	w, err := New(path, Config{DebounceMs: 20})
	require.NoError(t, err)
	ch := collect(t, w)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("profile: {name: x}\n"), 0644))

	changes := waitChanges(t, ch)
	require.Len(t, changes, 1)
	assert.Equal(t, path, changes[0].Path)
	assert.Equal(t, OpModify, changes[0].Operation)
}

func TestWatchDirectoryWithFilter(t *testing.T) {
	dir := t.TempDir()
	projects := filepath.Join(dir, "projects")
	require.NoError(t, os.MkdirAll(projects, 0755))

	w, err := New(dir, Config{
		DebounceMs: 20,
		Filter:     func(rel string) bool { return strings.HasSuffix(rel, ".yaml") },
	})
	require.NoError(t, err)
	ch := collect(t, w)
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.Equal(t, 2, w.WatchedPaths())

	require.NoError(t, os.WriteFile(filepath.Join(projects, "readme.md"), []byte("#"), 0644))
	target := filepath.Join(projects, "one.yaml")
	require.NoError(t, os.WriteFile(target, []byte("id: 1\n"), 0644))

	changes := waitChanges(t, ch)
	require.Len(t, changes, 1)
	assert.Equal(t, target, changes[0].Path)
	assert.GreaterOrEqual(t, w.Stats().Batches, int64(1))
}

func TestWatchReportsDelete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: {}\n"), 0644))

	w, err := New(path, Config{DebounceMs: 20})
	require.NoError(t, err)
	ch := collect(t, w)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.Remove(path))
	changes := waitChanges(t, ch)
	require.NotEmpty(t, changes)
	assert.Equal(t, OpDelete, changes[0].Operation)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir(), DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
}

func TestNewMissingPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "gone"), DefaultConfig())
	assert.True(t, os.IsNotExist(err))
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "modify", OpModify.String())
	assert.Equal(t, "unknown", Operation(42).String())
}
