package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Notification is the delegate methods from the Notifier
type Notification interface {
	WatcherItemDidChange(string)
	WatcherDidError(error)
}

// Notifier is the base interface for file watching
type Notifier interface {
	Start(Notification)
	Add(string) error
	Shutdown()
}

// File is a file watcher that notifies when a file has been changed
type File struct {
	watcher  *fsnotify.Watcher
	shutdown chan struct{}
	once     sync.Once

	mu    sync.RWMutex
	files map[string]struct{}
}

// NewFile is a standard initializer
func NewFile() (*File, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	f := &File{
		watcher:  watcher,
		shutdown: make(chan struct{}),
		files:    make(map[string]struct{}),
	}
	return f, nil
}

// Add adds a file to start watching.
// The parent directory is watched so the file survives being replaced by rename.
func (f *File) Add(path string) error {
	path = filepath.Clean(path)
	if err := f.watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	f.mu.Lock()
	f.files[path] = struct{}{}
	f.mu.Unlock()
	return nil
}

func (f *File) watching(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.files[filepath.Clean(path)]
	return ok
}

// Shutdown stop the file watching run loop
func (f *File) Shutdown() {
	// don't block if Start quit early
	f.once.Do(func() {
		close(f.shutdown)
	})
}

// Start is a runloop to watch for files changes from the file paths added from Add()
func (f *File) Start(notifier Notification) {
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if !f.watching(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				notifier.WatcherItemDidChange(filepath.Clean(event.Name))
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			notifier.WatcherDidError(err)

		case <-f.shutdown:
			_ = f.watcher.Close()
			return
		}
	}
}
