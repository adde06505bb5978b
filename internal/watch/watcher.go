// Package watch monitors a content directory and triggers TOC regeneration
// when files change. Rapid bursts of filesystem events are debounced into a
// single regeneration.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/tocbuilder/internal/logfields"
)

// Watcher monitors a content directory tree for changes and invokes a
// regeneration callback.
type Watcher struct {
	root         string
	onChange     func() error
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	stopOnce     sync.Once
	stopChan     chan struct{}
	changeChan   chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher over the directory tree rooted at root.
// onChange runs after each debounced batch of changes.
func NewWatcher(root string, onChange func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve content root: %w", err)
	}

	return &Watcher{
		root:         absRoot,
		onChange:     onChange,
		watcher:      fsw,
		stopChan:     make(chan struct{}),
		changeChan:   make(chan struct{}, 1),
		debounceTime: 2 * time.Second, // Debounce rapid file changes
	}, nil
}

// Start begins monitoring. Every directory under the root is watched;
// directories created later are picked up from their create events.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch content tree %s: %w", w.root, err)
	}

	slog.Info("Starting content watcher", logfields.Dir(w.root))

	go w.watchLoop(ctx)
	go w.regenLoop(ctx)

	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		slog.Info("Stopping content watcher", logfields.Dir(w.root))
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	})
}

// watchLoop turns filesystem events into debounced change triggers.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				// New directories need their own watch to see files added
				// to them later. Add is a no-op error for plain files
				// removed before we get here.
				_ = w.watcher.Add(event.Name)
			}

			slog.Debug("Content change detected", logfields.Path(event.Name))
			w.triggerRegen()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", logfields.Error(err))
		}
	}
}

// regenLoop handles debounced regeneration.
func (w *Watcher) regenLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.changeChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				if err := w.onChange(); err != nil {
					slog.Error("Regeneration failed", logfields.Error(err))
				}
			})
		}
	}
}

// triggerRegen queues a regeneration unless one is already pending.
func (w *Watcher) triggerRegen() {
	select {
	case w.changeChan <- struct{}{}:
	default:
	}
}
