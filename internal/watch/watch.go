// Package watch re-runs a callback whenever a map file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.Logger
}

// New creates a Watcher for path. Bursts of events closer together than
// debounce trigger one run.
func New(path string, debounce time.Duration, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{path: filepath.Clean(path), debounce: debounce, log: log}
}

// Run calls fn once immediately and again after each change to the file,
// until ctx is done. Errors from fn are logged, not returned; Run only
// fails if the watch itself cannot be set up.
//
// The parent directory is watched rather than the file so that editors
// which save by rename keep triggering events.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	w.invoke(ctx, fn)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("map file event", zap.String("event", event.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.invoke(ctx, fn)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) invoke(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		w.log.Warn("map reload failed", zap.String("path", w.path), zap.Error(err))
	}
}
