package locale

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("locale watcher closed")

// reloadDebounce coalesces the burst of write events editors emit when
// saving a file.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk, so a
// running editor picks up language switches without restarting.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	catalog *Catalog
	path    string

	// Reload outcomes, one per detected change
	reloads chan error

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatchFile starts watching a catalog file. The file's directory is
// watched rather than the file itself so saves that replace the file
// (write to temp, rename over) keep being observed.
func WatchFile(catalog *Catalog, path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		catalog: catalog,
		path:    absPath,
		reloads: make(chan error, 16),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Reloads delivers the result of each reload triggered by a file change:
// nil on success, the load error otherwise.
func (w *Watcher) Reloads() <-chan error {
	return w.reloads
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Debounce: editors emit several events per save
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				timerCh = timer.C
			} else {
				timer.Reset(reloadDebounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant reports whether the event concerns the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// reload loads the catalog file and publishes the outcome.
func (w *Watcher) reload() {
	err := w.catalog.LoadFile(w.path)
	select {
	case w.reloads <- err:
	default:
		// Drop when nobody is draining the channel
	}
}
