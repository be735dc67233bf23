// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     catalog
// Description: TDL file catalog with hot-reload support
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
	mdwconfig "github.com/msto63/tdl/foundation/core/config"
	"github.com/msto63/tdl/foundation/tdl"
	"github.com/msto63/tdl/pkg/core/logging"
)

// Options configures a Loader
type Options struct {
	Compiler  *tdl.Compiler   // Required
	Logger    *logging.Logger // Default: logging.New("catalog")
	Extension string          // Default: ".tdl"
	Debounce  time.Duration   // Default: 100ms
}

// Loader compiles every TDL file of a directory and keeps the results
// current while watching the directory
type Loader struct {
	mu       sync.RWMutex
	entries  map[string]*Entry // path -> entry
	dir      string
	options  Options
	watcher  *fsnotify.Watcher
	logger   *logging.Logger
	onChange func(entry *Entry) // Callback when a file is compiled
	onDelete func(path string)  // Callback when a file is removed
	stopCh   chan struct{} // Closed by Stop; one per watch run
	done     chan struct{} // Closed when the watch loop has exited
	reloads  sync.WaitGroup
	running  bool
}

// NewLoader creates a new catalog loader for dir
func NewLoader(dir string, opts Options) (*Loader, error) {
	if opts.Compiler == nil {
		return nil, mdwerror.New("catalog requires a compiler").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("catalog.NewLoader")
	}
	if opts.Logger == nil {
		opts.Logger = logging.New("catalog")
	}
	if opts.Extension == "" {
		opts.Extension = mdwconfig.DefaultWatchExtension
	}
	if !strings.HasPrefix(opts.Extension, ".") {
		opts.Extension = "." + opts.Extension
	}
	if opts.Debounce <= 0 {
		opts.Debounce = mdwconfig.DefaultDebounce
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to resolve catalog directory").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("catalog.NewLoader")
	}

	return &Loader{
		entries: make(map[string]*Entry),
		dir:     abs,
		options: opts,
		logger:  opts.Logger,
	}, nil
}

// SetOnChange sets the callback for when a file is compiled or recompiled
func (l *Loader) SetOnChange(fn func(entry *Entry)) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

// SetOnDelete sets the callback for when a file is removed
func (l *Loader) SetOnDelete(fn func(path string)) {
	l.mu.Lock()
	l.onDelete = fn
	l.mu.Unlock()
}

// LoadAll compiles all matching files of the directory. Files that fail to
// compile are kept as invalid entries; the returned error reports only
// directory problems.
func (l *Loader) LoadAll(ctx context.Context) (Stats, error) {
	info, err := os.Stat(l.dir)
	if err != nil {
		return Stats{}, mdwerror.Wrap(err, "failed to open catalog directory").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("catalog.LoadAll").
			WithDetail("dir", l.dir)
	}
	if !info.IsDir() {
		return Stats{}, mdwerror.Wrap(ErrNotDirectory, "failed to open catalog directory").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("catalog.LoadAll").
			WithDetail("dir", l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*"+l.options.Extension))
	if err != nil {
		return Stats{}, mdwerror.Wrap(err, "failed to list catalog files").
			WithCode(mdwerror.CodeInternal).
			WithOperation("catalog.LoadAll")
	}
	sort.Strings(files)

	if len(files) == 0 {
		l.logger.Info("No TDL files found in directory", "dir", l.dir)
		return Stats{}, nil
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return l.Stats(), mdwerror.Wrap(err, "catalog load canceled").
				WithCode(mdwerror.CodeCanceled).
				WithOperation("catalog.LoadAll")
		}
		entry := l.compileFile(ctx, file)
		l.store(entry)
	}

	stats := l.Stats()
	l.logger.Info("TDL files loaded from directory",
		"dir", l.dir, "files", stats.Files, "invalid", stats.Invalid, "tasks", stats.Tasks)
	return stats, nil
}

// Reload recompiles a single file and notifies the change callback
func (l *Loader) Reload(ctx context.Context, path string) *Entry {
	entry := l.compileFile(ctx, path)
	l.store(entry)

	l.mu.RLock()
	onChange := l.onChange
	l.mu.RUnlock()
	if onChange != nil {
		onChange(entry)
	}
	return entry
}

// compileFile reads and compiles path. Read failures become invalid entries.
func (l *Loader) compileFile(ctx context.Context, path string) *Entry {
	entry := &Entry{
		ID:       uuid.NewString(),
		Path:     path,
		LoadedAt: time.Now(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		entry.Err = mdwerror.Wrap(err, "failed to read TDL file").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("catalog.compileFile").
			WithDetail("path", path)
		l.logger.Warn("Failed to read TDL file", "file", filepath.Base(path), "error", err)
		return entry
	}
	entry.Source = string(data)

	result, err := l.options.Compiler.Compile(ctx, path, entry.Source)
	if err != nil {
		entry.Err = err
		l.logger.Warn("TDL file rejected", "file", filepath.Base(path), "error", err)
		return entry
	}

	entry.RunID = result.RunID
	entry.Program = result.Program
	l.logger.Debug("TDL file compiled", "file", filepath.Base(path), "tasks", len(result.Program.Tasks))
	return entry
}

func (l *Loader) store(entry *Entry) {
	l.mu.Lock()
	l.entries[entry.Path] = entry
	l.mu.Unlock()
}

// Get returns the entry for path
func (l *Loader) Get(path string) (*Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.entries[abs]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// All returns all entries sorted by path
func (l *Loader) All() []*Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]*Entry, 0, len(l.entries))
	for _, entry := range l.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}

// Stats summarizes the current catalog contents
func (l *Loader) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var stats Stats
	for _, entry := range l.entries {
		stats.Files++
		if entry.Valid() {
			stats.Valid++
			stats.Tasks += entry.TaskCount()
		} else {
			stats.Invalid++
		}
	}
	return stats
}

// StartWatching starts the file watcher for hot-reload. A loader can watch
// again after Stop or after ctx is cancelled.
func (l *Loader) StartWatching(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("catalog.StartWatching")
	}

	if err := watcher.Add(l.dir); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeInternal).
			WithOperation("catalog.StartWatching").
			WithDetail("dir", l.dir)
	}

	l.watcher = watcher
	l.running = true
	l.stopCh = make(chan struct{})
	l.done = make(chan struct{})
	l.logger.Info("Started watching for TDL changes", "dir", l.dir)

	go l.watchLoop(ctx, watcher, l.stopCh, l.done)

	return nil
}

// Running reports whether the watch loop is active
func (l *Loader) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// watchLoop handles file system events. Create and write events are
// debounced per file; the reload runs once the file has been quiet for the
// debounce delay. On exit the loop waits for reloads already in flight, so
// no callback runs after done is closed.
func (l *Loader) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, stopCh, done chan struct{}) {
	pending := make(map[string]*time.Timer)

	defer func() {
		for _, timer := range pending {
			if timer.Stop() {
				l.reloads.Done()
			}
		}
		l.reloads.Wait()
		watcher.Close()

		l.mu.Lock()
		l.running = false
		l.watcher = nil
		l.mu.Unlock()
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping file watcher (context cancelled)")
			return

		case <-stopCh:
			l.logger.Info("Stopping file watcher (stop signal)")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if !l.matches(event.Name) {
				continue
			}

			if timer, exists := pending[event.Name]; exists {
				if timer.Stop() {
					l.reloads.Done()
				}
				delete(pending, event.Name)
			}

			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				ev := event
				l.reloads.Add(1)
				pending[event.Name] = time.AfterFunc(l.options.Debounce, func() {
					defer l.reloads.Done()
					l.handleFileEvent(ctx, ev)
				})
				continue
			}

			l.handleFileEvent(ctx, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.logger.Error("Watcher error", "error", err)
		}
	}
}

// handleFileEvent processes a single file event
func (l *Loader) handleFileEvent(ctx context.Context, event fsnotify.Event) {
	fileName := filepath.Base(event.Name)

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create || event.Op&fsnotify.Write == fsnotify.Write:
		l.logger.Info("TDL file changed, recompiling", "file", fileName, "op", event.Op.String())
		entry := l.Reload(ctx, event.Name)
		if entry.Valid() {
			l.logger.Info("TDL file reloaded", "file", fileName, "tasks", entry.TaskCount())
		}

	case event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename:
		l.Remove(event.Name)
	}
}

// Remove drops the entry for path and notifies the delete callback
func (l *Loader) Remove(path string) bool {
	l.mu.Lock()
	_, existed := l.entries[path]
	delete(l.entries, path)
	onDelete := l.onDelete
	l.mu.Unlock()

	if !existed {
		return false
	}

	l.logger.Info("TDL file removed", "file", filepath.Base(path))
	if onDelete != nil {
		onDelete(path)
	}
	return true
}

// Stop stops the file watcher and returns once the watch loop and any
// reload it started have finished. Safe to call more than once. Stop must
// not be called from a change or delete callback.
func (l *Loader) Stop() {
	l.mu.Lock()
	stopCh, done := l.stopCh, l.done
	l.stopCh, l.done = nil, nil
	l.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	<-done
}

// matches reports whether path has the catalog extension
func (l *Loader) matches(path string) bool {
	return strings.EqualFold(filepath.Ext(path), l.options.Extension)
}
