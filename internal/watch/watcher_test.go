package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hopd/internal/errors"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.AddDirectory(dir))
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	// Give fsnotify a moment to establish the watch
	time.Sleep(100 * time.Millisecond)
	return w
}

func TestWatcherDeliversFileEvents(t *testing.T) {
	dir := t.TempDir()
	w := startedWatcher(t, dir)

	path := filepath.Join(dir, "incoming.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))

	select {
	case event, ok := <-w.Events():
		require.True(t, ok, "events channel closed unexpectedly")
		assert.Equal(t, path, event.Path)
		assert.True(t, event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write))
		require.NotNil(t, event.Info)
		assert.Equal(t, "incoming.tar.gz", event.Info.Name())
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for file event")
	}
}

func TestWatcherSkipsDirectoryEvents(t *testing.T) {
	dir := t.TempDir()
	w := startedWatcher(t, dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for directory creation: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopClosesChannel(t *testing.T) {
	dir := t.TempDir()
	w := startedWatcher(t, dir)

	w.Stop()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "events channel should be closed after Stop")
	case <-time.After(time.Second):
		t.Error("timeout waiting for events channel to close")
	}

	assert.False(t, w.IsRunning())
}

func TestWatcherRejectsBadDirectories(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(w.Stop)

	err = w.AddDirectory(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsInputNotFound(err))

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	err = w.AddDirectory(file)
	require.Error(t, err)
}

func TestWatcherTracksDirectories(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(w.Stop)

	require.NoError(t, w.AddDirectory(dirA))
	require.NoError(t, w.AddDirectory(dirB))
	require.NoError(t, w.AddDirectory(dirA), "re-adding must not duplicate")

	assert.ElementsMatch(t, []string{dirA, dirB}, w.Directories())
}
