package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long a file must stay quiet before its change is reported. A save that
// truncates and then writes emits several events; only the last one starts the final countdown.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to YAML config files. Directories are watched rather than files so
// editors that save by rename keep being tracked.
type Watcher struct {
	watcher *fsnotify.Watcher
	// Events receives the path of each changed YAML file.
	Events chan string
	// Errors receives errors from the underlying fsnotify watcher.
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	settled chan string
	once    sync.Once
	files   map[string]struct{}
	dirs    map[string]struct{}
}

// NewWatcher starts watching the given paths. A directory reports every YAML file inside it; a
// file reports only itself.
//
// Parameters:
//   - paths: config files or directories to watch
//
// Returns:
//   - *Watcher: the running watcher, to be closed by the caller
//   - error: error if fsnotify cannot be started or a path cannot be watched
func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]struct{})
	dirs := make(map[string]struct{})
	added := make(map[string]struct{})
	for _, path := range paths {
		path = filepath.Clean(path)
		dir := path
		if isConfigFile(path) {
			files[path] = struct{}{}
			dir = filepath.Dir(path)
		} else {
			dirs[dir] = struct{}{}
		}
		if _, ok := added[dir]; ok {
			continue
		}
		added[dir] = struct{}{}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
		settled: make(chan string),
		files:   files,
		dirs:    dirs,
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes its channels. Safe to call more than once.
//
// Returns:
//   - error: error from closing the fsnotify watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range pending {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.wants(name) {
				continue
			}
			if timer, ok := pending[name]; ok {
				timer.Reset(debounceWindow)
				continue
			}
			pending[name] = time.AfterFunc(debounceWindow, func() {
				select {
				case w.settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-w.settled:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) wants(name string) bool {
	if !isConfigFile(name) {
		return false
	}
	if _, ok := w.files[name]; ok {
		return true
	}
	_, ok := w.dirs[filepath.Dir(name)]
	return ok
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
