package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"hopd/internal/archive"
	"hopd/internal/config"
	"hopd/internal/errors"
	"hopd/internal/log"
	"hopd/internal/run"
	"hopd/pkg/types"
)

// settleTick is how often a pending archive is re-stat'd while waiting
// for its size to stop changing
const settleTick = 500 * time.Millisecond

// recentWindow suppresses re-handling of an archive for the trailing
// events of the same create/write burst
const recentWindow = 2 * time.Second

// Status is a snapshot of the daemon's state
type Status struct {
	Running      bool
	Directories  []string
	LastActivity time.Time
	Extracted    int
	Failed       int
	Skipped      int
}

// Callback is invoked after each archive is handled. The report is nil
// when extraction was skipped (dry run) or failed.
type Callback func(archive string, report *types.ExtractionReport, err error)

// Daemon watches directories and extracts archives as they appear. A
// new file is only touched once its size has been stable for the
// configured settle period, so half-written downloads are left alone.
type Daemon struct {
	cfg        *config.Config
	watcher    *Watcher
	transcoder *archive.Transcoder

	extracted    int
	failed       int
	skipped      int
	lastActivity time.Time

	callback Callback
	settle   time.Duration
	dryRun   bool

	pending map[string]struct{}
	recent  map[string]time.Time
	mutex   sync.RWMutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewDaemon creates the auto-extraction service. The runner is passed
// through to the transcoder, so tests can drive the daemon with a fake.
func NewDaemon(cfg *config.Config, runner run.Runner) (*Daemon, error) {
	watcher, err := NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		watcher:    watcher,
		transcoder: archive.NewFromConfig(cfg, runner),
		settle:     time.Duration(cfg.Watch.Settle) * time.Second,
		dryRun:     cfg.Watch.DryRun,
		pending:    map[string]struct{}{},
		recent:     map[string]time.Time{},
	}, nil
}

// Start begins watching the configured directories
func (d *Daemon) Start() error {
	d.mutex.Lock()
	if d.running {
		d.mutex.Unlock()
		return errors.New("daemon is already running")
	}
	d.mutex.Unlock()

	for _, dir := range d.cfg.Watch.Directories {
		if err := d.watcher.AddDirectory(dir); err != nil {
			return err
		}
	}
	if len(d.watcher.Directories()) == 0 {
		return errors.New("no directories to watch")
	}

	if err := d.watcher.Start(); err != nil {
		return err
	}

	d.mutex.Lock()
	d.running = true
	d.lastActivity = time.Now()
	d.ctx, d.cancel = context.WithCancel(context.Background())
	d.mutex.Unlock()

	go d.processEvents()
	return nil
}

// Stop halts the daemon. Archives still settling are abandoned.
func (d *Daemon) Stop() {
	d.mutex.Lock()
	if !d.running {
		d.mutex.Unlock()
		return
	}
	d.running = false
	cancel := d.cancel
	d.mutex.Unlock()

	cancel()
	d.watcher.Stop()
}

// AddDirectory adds a directory to the watch list
func (d *Daemon) AddDirectory(dir string) error {
	return d.watcher.AddDirectory(dir)
}

// SetCallback registers a hook invoked after each handled archive
func (d *Daemon) SetCallback(cb Callback) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = cb
}

// SetDryRun switches between reporting and actually extracting
func (d *Daemon) SetDryRun(dryRun bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.dryRun = dryRun
}

// Status returns a snapshot of the daemon's counters
func (d *Daemon) Status() Status {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return Status{
		Running:      d.running,
		Directories:  d.watcher.Directories(),
		LastActivity: d.lastActivity,
		Extracted:    d.extracted,
		Failed:       d.failed,
		Skipped:      d.skipped,
	}
}

func (d *Daemon) processEvents() {
	for event := range d.watcher.Events() {
		if _, _, ok := d.transcoder.Table().Match(event.Path); !ok {
			continue
		}

		d.mutex.Lock()
		if _, inFlight := d.pending[event.Path]; inFlight {
			d.mutex.Unlock()
			continue
		}
		if done, ok := d.recent[event.Path]; ok && event.Timestamp.Sub(done) < recentWindow {
			d.mutex.Unlock()
			continue
		}
		d.pending[event.Path] = struct{}{}
		d.lastActivity = event.Timestamp
		d.mutex.Unlock()

		// Each archive settles on its own clock; handling them
		// concurrently keeps a slow download from stalling the rest
		go d.handleArchive(event.Path)
	}
}

func (d *Daemon) handleArchive(path string) {
	defer func() {
		d.mutex.Lock()
		delete(d.pending, path)
		d.recent[path] = time.Now()
		d.mutex.Unlock()
	}()

	d.mutex.RLock()
	ctx := d.ctx
	d.mutex.RUnlock()

	if !d.waitSettled(ctx, path) {
		return
	}

	d.mutex.RLock()
	dryRun := d.dryRun
	cb := d.callback
	d.mutex.RUnlock()

	if dryRun {
		log.LogWithFields(log.F("archive", path)).Info("would extract archive")
		d.mutex.Lock()
		d.skipped++
		d.mutex.Unlock()
		if cb != nil {
			cb(path, nil, nil)
		}
		return
	}

	dest := d.cfg.Watch.ExtractTo
	if dest == "" {
		dest = filepath.Dir(path)
	} else if err := os.MkdirAll(dest, 0755); err != nil {
		log.LogWithError(err).Error("cannot create extraction destination")
		d.mutex.Lock()
		d.failed++
		d.mutex.Unlock()
		return
	}

	report, err := d.transcoder.ExtractInto(ctx, path, dest)

	d.mutex.Lock()
	if err != nil {
		d.failed++
	} else {
		d.extracted++
	}
	d.lastActivity = time.Now()
	d.mutex.Unlock()

	if err != nil {
		log.LogWithError(err).Error("auto-extraction failed")
	} else {
		log.LogWithFields(log.F("archive", path), log.F("target", report.TargetDir)).Info("archive extracted")
		if d.cfg.Watch.RemoveArchive {
			if rmErr := os.Remove(path); rmErr != nil {
				log.LogWithError(rmErr).Warn("cannot remove extracted archive")
			}
		}
	}

	if cb != nil {
		cb(path, report, err)
	}
}

// waitSettled polls until the file's size has been stable for the
// settle period. Returns false if the file vanishes or the daemon
// stops first.
func (d *Daemon) waitSettled(ctx context.Context, path string) bool {
	if d.settle <= 0 {
		_, err := os.Stat(path)
		return err == nil
	}

	var lastSize int64 = -1
	var stable time.Duration

	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(settleTick):
		}

		info, err := os.Stat(path)
		if err != nil {
			return false
		}
		if info.Size() == lastSize {
			stable += settleTick
			if stable >= d.settle {
				return true
			}
		} else {
			lastSize = info.Size()
			stable = 0
		}
	}
}
