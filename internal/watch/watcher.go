// Package watch re-runs a link pass when theme pages change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches directories and invokes a callback, debounced, after
// relevant changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dirs     []string
	debounce time.Duration
	match    func(name string) bool
	onChange func()
	logger   *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	pass    sync.Mutex     // serializes onChange calls
	passes  sync.WaitGroup // onChange calls in flight
}

// Options configures a Watcher.
type Options struct {
	Dirs     []string          // Directories to watch (not recursive)
	Debounce time.Duration     // Quiet period before OnChange fires
	Match    func(string) bool // Filters event paths; nil accepts everything
	OnChange func()            // Called from the timer goroutine, never concurrently
	Logger   *slog.Logger
}

// New creates a watcher. Call Run to start it.
func New(opts Options) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	match := opts.Match
	if match == nil {
		match = func(string) bool { return true }
	}

	return &Watcher{
		watcher:  fw,
		dirs:     opts.Dirs,
		debounce: opts.Debounce,
		match:    match,
		onChange: opts.OnChange,
		logger:   logger,
	}, nil
}

// Run watches until ctx is cancelled. Directories that cannot be watched are
// logged and skipped. Run returns only after any OnChange call in progress
// has finished.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	w.running = true
	w.mu.Unlock()

	defer w.close()

	watched := 0
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", "dir", dir, "error", err)
			continue
		}
		watched++
		w.logger.Debug("watching directory", "dir", dir)
	}
	if watched == 0 {
		w.logger.Warn("no directories are being watched")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) || !w.match(event.Name) {
				continue
			}
			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running || w.onChange == nil {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.passes.Add(1)
	w.mu.Unlock()
	defer w.passes.Done()

	w.pass.Lock()
	defer w.pass.Unlock()
	w.onChange()
}

func (w *Watcher) close() {
	w.mu.Lock()
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.passes.Wait()

	if err := w.watcher.Close(); err != nil {
		w.logger.Debug("failed to close watcher", "error", err)
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// HasExt returns a matcher accepting paths with one of the given extensions.
func HasExt(exts ...string) func(string) bool {
	return func(name string) bool {
		ext := filepath.Ext(name)
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}
}
