package interactive

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rokudocs/brsdoc/internal/log"
)

// defaultDebounce coalesces the bursts of write events editors produce on save.
const defaultDebounce = 100 * time.Millisecond

// FileWatcher re-renders a single source file whenever it is saved. The
// containing directory is watched as well because many editors replace the
// file on save instead of writing in place.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	debounce time.Duration
	onChange func()
}

func NewFileWatcher(filePath string, onChange func()) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filePath, err)
	}
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		log.Warn("couldn't watch directory, file recreation may be missed",
			slog.String("dir", filepath.Dir(filePath)),
			slog.String("error", err.Error()))
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: filePath,
		debounce: defaultDebounce,
		onChange: onChange,
	}, nil
}

// Start blocks until ctx is cancelled, invoking the change callback after
// each debounced save of the watched file.
func (fw *FileWatcher) Start(ctx context.Context) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.concerns(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(fw.debounce, fw.onChange)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}

func (fw *FileWatcher) concerns(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(fw.filePath) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
