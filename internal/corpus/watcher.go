package corpus

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps an in-memory corpus in sync with the file system so
// long-running hosts resolve against a fresh identifier set without
// rescanning per request.
type Watcher struct {
	watcher  *fsnotify.Watcher
	corpus   *Memory
	scanner  *Scanner
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	mu      sync.Mutex
	pending map[string]fsnotify.Op
	timer   *time.Timer
}

// NewWatcher creates a watcher that applies create/remove/rename events to
// the corpus, filtered through the scanner's patterns.
func NewWatcher(corpus *Memory, scanner *Scanner, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		watcher:  fsw,
		corpus:   corpus,
		scanner:  scanner,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
		pending:  make(map[string]fsnotify.Op),
	}, nil
}

// Start adds watches for every directory under root and begins processing
// events.
func (w *Watcher) Start(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // keep walking past unreadable entries
		}
		if !d.IsDir() {
			return nil
		}
		if rel, ok := w.scanner.Rel(path); ok && rel != "." && w.scanner.excludedDir(rel) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			log.Printf("warning: failed to watch %s: %v", path, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop shuts the watcher down and waits for its goroutine to exit. Events
// pending at shutdown are dropped; the corpus is being torn down anyway.
func (w *Watcher) Stop() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("corpus watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch before their contents produce
	// events.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				log.Printf("warning: failed to watch new directory %s: %v", event.Name, err)
			}
			return
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[event.Name] |= event.Op
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

// flush applies the batched events to the corpus.
func (w *Watcher) flush() {
	w.mu.Lock()
	events := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.mu.Unlock()

	for path, op := range events {
		rel, ok := w.scanner.Rel(path)
		if !ok || !w.scanner.Matches(rel) {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			// Gone from disk; rename sources and removals land here.
			w.corpus.Remove(rel)
			continue
		}
		if op&(fsnotify.Create|fsnotify.Rename) != 0 {
			w.corpus.Add(rel)
		}
	}
}
