// Package watch runs the auto-extraction service: an fsnotify watcher
// feeding a daemon that unpacks archives as they appear in the watched
// directories.
package watch

import (
	"os"
	"sync"
	"time"

	"hopd/internal/errors"
	"hopd/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileEvent is one file creation or write seen by the watcher
type FileEvent struct {
	Path      string
	Info      os.FileInfo
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors directories for new files using fsnotify
type Watcher struct {
	directories []string
	events      chan FileEvent
	stopChan    chan struct{}
	fsWatcher   *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// NewWatcher creates a directory watcher backed by fsnotify
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	return &Watcher{
		directories: []string{},
		events:      make(chan FileEvent, 16),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddDirectory registers a directory with the watcher. The directory
// must already exist.
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.NewFileError("cannot watch directory", dir, errors.InputNotFound, err)
	}
	if !info.IsDir() {
		return errors.NewFileError("not a directory", dir, errors.InputNotFound, nil)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.Wrapf(err, "adding %s to watcher", dir)
	}

	w.mutex.Lock()
	found := false
	for _, existing := range w.directories {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()

	log.LogWithFields(log.F("directory", dir)).Info("watching directory")
	return nil
}

// Events returns the channel delivering file events
func (w *Watcher) Events() <-chan FileEvent {
	return w.events
}

// Start begins delivering file events. Only creations and writes of
// regular files are forwarded; directory events and files that vanish
// before they can be stat'd are dropped.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}
				info, err := os.Stat(event.Name)
				if err != nil {
					continue
				}
				if info.IsDir() {
					continue
				}

				ev := FileEvent{
					Path:      event.Name,
					Info:      info,
					Timestamp: time.Now(),
					Op:        event.Op,
				}

				// Non-blocking send; a stalled consumer loses
				// events rather than wedging the loop
				select {
				case w.events <- ev:
				default:
					log.LogWithFields(log.F("file", event.Name)).Warn("event channel full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.Debug("watcher started")
	return nil
}

// Stop halts event delivery and closes the events channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("closing fsnotify watcher")
	}
	w.running = false
	close(w.events)

	log.Debug("watcher stopped")
}

// IsRunning reports whether the watcher is active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns a copy of the watched directory list
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirs := make([]string, len(w.directories))
	copy(dirs, w.directories)
	return dirs
}
