// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is used when New is given a non-positive debounce.
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches the directories containing a set of files and calls
// onChange with the changed files once writes have settled.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *logrus.Entry
	onChange func(files []string)

	// files maps every watched path, and the resolved target of symlinked
	// paths, to the path the caller registered.
	files map[string]string

	closeOnce sync.Once
}

// New creates a Watcher for paths. fsnotify does not follow symlinks, so
// the directory of each link target is watched as well.
func New(paths []string, debounce time.Duration, logger *logrus.Entry, onChange func(files []string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	w := &Watcher{
		watcher:  watcher,
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
		files:    make(map[string]string),
	}

	watchedDirs := make(map[string]bool)
	addDir := func(dir string) error {
		if watchedDirs[dir] {
			return nil
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		watchedDirs[dir] = true
		logger.Debugf("Watching directory: %s", dir)
		return nil
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		w.files[abs] = p
		if err := addDir(filepath.Dir(abs)); err != nil {
			watcher.Close()
			return nil, err
		}

		info, err := os.Lstat(abs)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			continue
		}
		target, err := filepath.EvalSymlinks(abs)
		if err != nil {
			logger.WithError(err).Warnf("Failed to resolve symlink %s", p)
			continue
		}
		w.files[target] = p
		if err := addDir(filepath.Dir(target)); err != nil {
			logger.WithError(err).Warnf("Failed to watch symlink target dir %s", filepath.Dir(target))
		}
	}

	return w, nil
}

// Start delivers changes until ctx is cancelled or the watcher is closed.
// Changes arriving within the debounce window are batched into one call.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.Close()

	pending := make(map[string]bool)
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name, ok := w.files[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			pending[name] = true
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			clear(pending)

			w.logger.WithField("files", changed).Debug("Watched files changed")
			if w.onChange != nil {
				w.onChange(changed)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops the watcher and releases resources. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
