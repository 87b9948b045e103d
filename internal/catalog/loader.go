// ============================================================================
// gregor - Kalenderarithmetik und Zeitformatierung
// ============================================================================
//
// Package:     catalog
// Description: Pattern catalog loader with hot-reload support
// Author:      Mike Stoffels
// Created:     2025-12-11
// License:     MIT
// ============================================================================

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	gerror "github.com/msto63/gregor/foundation/core/error"
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/timex"
)

const defaultDebounce = 200 * time.Millisecond

// Loader merges a catalog file into a base pattern registry and keeps the
// result current while watching the file. Registries are replaced, never
// modified, so a value returned by Patterns stays valid after a reload.
type Loader struct {
	mu       sync.RWMutex
	path     string
	base     timex.Patterns
	current  timex.Patterns
	logger   *mdwlog.Logger
	onChange func(timex.Patterns)
	debounce time.Duration
}

// NewLoader creates a loader for the catalog at path on top of base
func NewLoader(path string, base timex.Patterns, logger *mdwlog.Logger) *Loader {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Loader{
		path:     path,
		base:     base,
		current:  base,
		logger:   logger.WithName("catalog"),
		debounce: defaultDebounce,
	}
}

// SetOnChange sets the callback invoked with the new registry after each reload
func (l *Loader) SetOnChange(fn func(timex.Patterns)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// SetDebounce sets how long the watcher waits for a burst of events to settle
func (l *Loader) SetDebounce(d time.Duration) {
	if d <= 0 {
		d = defaultDebounce
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debounce = d
}

// Patterns returns the current registry
func (l *Loader) Patterns() timex.Patterns {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Load reads the catalog file and publishes base plus its patterns
func (l *Loader) Load() (timex.Patterns, error) {
	file, err := LoadFile(l.path)
	if err != nil {
		return l.Patterns(), err
	}

	patterns, err := l.base.Merge(file.Patterns)
	if err != nil {
		return l.Patterns(), gerror.Wrap(err, "invalid pattern in catalog").
			WithOperation("catalog.Load").
			WithDetail("path", l.path)
	}

	l.publish(patterns)
	l.logger.Info("Pattern catalog loaded", mdwlog.Fields{
		"file":     filepath.Base(l.path),
		"patterns": len(file.Patterns),
	})
	return patterns, nil
}

// LoadFile reads and validates a TOML or YAML catalog file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gerror.Wrap(err, "failed to read catalog").
			WithCode(gerror.CodeConfigError).
			WithOperation("catalog.LoadFile")
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, gerror.Wrap(fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path)), "failed to parse catalog").
			WithCode(gerror.CodeConfigError).
			WithOperation("catalog.LoadFile").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, gerror.Wrap(fmt.Errorf("%w: %v", ErrInvalidSyntax, err), "failed to parse catalog").
			WithCode(gerror.CodeConfigError).
			WithOperation("catalog.LoadFile").
			WithDetail("path", path)
	}

	// Apply defaults
	file.Defaults()

	// Validate
	if err := file.Validate(); err != nil {
		return nil, gerror.Wrap(err, "invalid catalog").
			WithCode(gerror.CodeInvalidConfig).
			WithOperation("catalog.LoadFile").
			WithDetail("path", path)
	}

	// Set internal tracking
	file.SourceFile = path
	file.LoadedAt = time.Now()

	return &file, nil
}

// Watch starts watching the catalog file and returns once the watcher is in
// place. The watch goroutine reloads the catalog after changes and stops when
// ctx is cancelled; the returned channel is closed when it has exited.
func (l *Loader) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: editors often replace files by rename
	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	l.logger.Info("Started watching pattern catalog", mdwlog.Fields{"file": l.path})

	done := make(chan struct{})
	go l.watchLoop(ctx, watcher, done)
	return done, nil
}

// watchLoop handles file system events
func (l *Loader) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, done chan<- struct{}) {
	defer close(done)
	defer watcher.Close()

	l.mu.RLock()
	delay := l.debounce
	l.mu.RUnlock()

	// Debounce timer, armed by the first event of a burst
	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}
	var pending fsnotify.Op

	target := filepath.Clean(l.path)
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			l.logger.Info("Stopping catalog watcher (context cancelled)")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Only process the catalog file
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			pending |= event.Op
			timer.Reset(delay)

		case <-timer.C:
			l.handleChange(pending)
			pending = 0

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.logger.ErrorWithErr("Watcher error", err)
		}
	}
}

// handleChange reloads after a settled burst of events. A removed catalog
// falls back to the base registry; a broken one keeps the last good registry.
func (l *Loader) handleChange(ops fsnotify.Op) {
	fileName := filepath.Base(l.path)

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		l.logger.Warn("Pattern catalog removed, using built-in patterns", mdwlog.Fields{"file": fileName})
		l.publish(l.base)
		l.notify(l.base)
		return
	}

	l.logger.Debug("Pattern catalog changed, reloading", mdwlog.Fields{"file": fileName, "op": ops.String()})

	patterns, err := l.Load()
	if err != nil {
		l.logger.ErrorWithErr("Failed to reload pattern catalog", err, mdwlog.Fields{"file": fileName})
		return
	}
	l.notify(patterns)
}

func (l *Loader) publish(p timex.Patterns) {
	l.mu.Lock()
	l.current = p
	l.mu.Unlock()
}

func (l *Loader) notify(p timex.Patterns) {
	l.mu.RLock()
	fn := l.onChange
	l.mu.RUnlock()
	if fn != nil {
		fn(p)
	}
}
