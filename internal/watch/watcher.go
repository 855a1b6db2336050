package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"ride-analytics/pkg/logging"
)

// settleDelay is how long a file must stay quiet before we treat the write
// as finished. CSV drops from other tools arrive as many small writes.
const settleDelay = 500 * time.Millisecond

// Watcher observes a directory for new or rewritten CSV files and invokes
// the handler once per settled file.
type Watcher struct {
	dir     string
	log     *logging.Logger
	handler func(path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a Watcher over dir. The handler runs on the watcher's
// goroutine, one file at a time.
func New(dir string, log *logging.Logger, handler func(path string)) *Watcher {
	return &Watcher{
		dir:     dir,
		log:     log,
		handler: handler,
		pending: make(map[string]*time.Timer),
	}
}

// Run watches the directory until the context is cancelled. Existing CSV
// files in the directory are processed once at startup so a pre-seeded drop
// folder is not ignored.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.log.Info("[watch] Watching %s for CSV drops", w.dir)
	w.processExisting()

	fired := make(chan string)
	done := make(chan struct{})
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path := <-fired:
			w.handler(path)
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isCSV(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.schedule(event.Name, fired, done)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("[watch] %v", err)
		}
	}
}

// schedule (re)arms the settle timer for a path. Each new write pushes the
// timer back, so the handler only fires once the file stops changing. A
// timer that fires after Run has returned abandons its send instead of
// blocking on the drained channel.
func (w *Watcher) schedule(path string, fired chan<- string, done <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Reset(settleDelay)
		return
	}
	w.pending[path] = time.AfterFunc(settleDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		select {
		case fired <- path:
		case <-done:
		}
	})
}

func (w *Watcher) processExisting() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.log.Error("[watch] read dir: %v", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !isCSV(e.Name()) {
			continue
		}
		w.handler(filepath.Join(w.dir, e.Name()))
	}
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
