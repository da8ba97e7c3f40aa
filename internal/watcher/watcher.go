// Package watcher reports changes to a single file, such as the config
// file, so it can be reloaded at runtime.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Options configures a Watcher.
type Options struct {
	// Debounce collapses bursts of events (editors often write twice).
	Debounce time.Duration
	// PollInterval is the fallback stat interval for filesystems where
	// fsnotify misses events. Zero disables polling.
	PollInterval time.Duration
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Debounce:     200 * time.Millisecond,
		PollInterval: 5 * time.Second,
	}
}

// OnChange is called after the watched file changed. It runs on the
// watcher goroutine.
type OnChange func()

// Watcher calls OnChange when its file is written, created or replaced.
type Watcher struct {
	filePath string
	opts     *Options
	onChange OnChange
	watcher  *fsnotify.Watcher
	logger   *zap.Logger

	modTime time.Time
	size    int64

	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// New creates a Watcher for filePath. The file must exist.
func New(filePath string, onChange OnChange, opts *Options, logger *zap.Logger) (*Watcher, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if onChange == nil {
		return nil, fmt.Errorf("change callback is required")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat watched file: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory so atomic renames by editors are seen.
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		filePath: absPath,
		opts:     opts,
		onChange: onChange,
		watcher:  fw,
		logger:   logger,
		modTime:  info.ModTime(),
		size:     info.Size(),
		done:     make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.filePath
}

// Run watches until ctx is done or Stop is called.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Stop()

	var poll <-chan time.Time
	if w.opts.PollInterval > 0 {
		ticker := time.NewTicker(w.opts.PollInterval)
		defer ticker.Stop()
		poll = ticker.C
	}

	var debounce *time.Timer
	var fire <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	schedule := func() {
		if debounce == nil {
			debounce = time.NewTimer(w.opts.Debounce)
		} else {
			debounce.Reset(w.opts.Debounce)
		}
		fire = debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.done:
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.String("path", w.filePath), zap.Error(err))
		case <-poll:
			if w.statChanged() {
				schedule()
			}
		case <-fire:
			fire = nil
			w.statChanged()
			w.logger.Info("watched file changed", zap.String("path", w.filePath))
			w.onChange()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.filePath {
		return false
	}
	// Remove and Rename are followed by Create on atomic saves.
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// statChanged records the file's current size and mtime and reports
// whether either moved.
func (w *Watcher) statChanged() bool {
	info, err := os.Stat(w.filePath)
	if err != nil {
		return false
	}
	changed := !info.ModTime().Equal(w.modTime) || info.Size() != w.size
	w.modTime = info.ModTime()
	w.size = info.Size()
	return changed
}
