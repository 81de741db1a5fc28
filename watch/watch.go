// Package watch re-evaluates ontology files when they change on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the change event channel.
	eventChannelBuffer = 64

	// defaultDebounce is used when no debounce delay is configured.
	defaultDebounce = 500 * time.Millisecond
)

// Watcher watches a fixed set of ontology files and emits their paths
// after changes settle. Editors often write a file several times in quick
// succession, so changes are debounced before being emitted.
type Watcher struct {
	files    map[string]bool
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	pendingMu sync.Mutex
	pending   map[string]bool

	events chan string
}

// New creates a watcher over the given files. The containing directories
// are watched so that editors replacing files via rename are still seen.
func New(files []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		watcher:  fsw,
		logger:   logger,
		debounce: debounce,
		pending:  make(map[string]bool),
		events:   make(chan string, eventChannelBuffer),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Events returns the channel of settled file change paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Run processes filesystem events until the context is cancelled. It
// closes the event channel on return.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)
	defer func() {
		_ = w.watcher.Close()
	}()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}

			w.pendingMu.Lock()
			w.pending[abs] = true
			w.pendingMu.Unlock()
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			w.flush()
		}
	}
}

// flush emits the pending changes collected during the debounce window.
func (w *Watcher) flush() {
	w.pendingMu.Lock()
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	for _, path := range changed {
		select {
		case w.events <- path:
		default:
			w.logger.Warn("dropping change event, channel full", "path", path)
		}
	}
}
