package prizeconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// WatcherConfig holds configuration for the prize file watcher
type WatcherConfig struct {
	// Path of the prize file
	Path string

	// OnChange is called once per burst of write/create/rename events
	OnChange func(ctx context.Context)

	// Debounce collapses editor save bursts; defaults to 250ms
	Debounce time.Duration

	Logger *slog.Logger
}

// Watcher reports changes to a prize file. The parent directory is watched
// so that editors which replace the file on save are still picked up.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	onChange func(ctx context.Context)
	debounce time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher starts watching the directory that holds cfg.Path
func NewWatcher(cfg *WatcherConfig) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}
	if cfg.OnChange == nil {
		return nil, errors.New("on change callback cannot be nil")
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", cfg.Path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		fs:       fsw,
		path:     path,
		onChange: cfg.OnChange,
		debounce: debounce,
		logger:   logger.With("component", "prize_watcher", "path", path),
	}, nil
}

// Run dispatches change notifications until ctx is cancelled or the
// watcher is closed
func (w *Watcher) Run(ctx context.Context) {
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Prize file changed", "op", event.Op.String())
			w.schedule(ctx)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Prize file watcher error", "error", err)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.fs.Close()
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.onChange(ctx)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
