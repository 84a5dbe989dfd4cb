package qualify

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher emits the contents of a file each time it is written.
type FileWatcher struct {
	path string
}

// NewFileWatcher creates a FileWatcher for path.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: path}
}

// Watch emits the file's current contents, then re-reads and emits the file
// after every write or create event. Read errors skip the event.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(w.path); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", w.path, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer fw.Close()

		if !w.emit(ctx, out) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if !w.emit(ctx, out) {
					return
				}
			case _, ok := <-fw.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

// emit sends the file's contents on out. It reports false once ctx is done.
func (w *FileWatcher) emit(ctx context.Context, out chan<- []byte) bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return ctx.Err() == nil
	}
	select {
	case out <- data:
		return true
	case <-ctx.Done():
		return false
	}
}
