package swagger

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DEFAULT_DEBOUNCE_TIME = 100 * time.Millisecond

// Watcher reports changes of a single file on Update, debounced. The parent
// directory is watched so editors that replace the file on save still
// trigger updates.
type Watcher struct {
	watcher      *fsnotify.Watcher
	filename     string
	debounceTime time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	onUpdate chan<- error
	Update   <-chan error
}

func WatchFile(filename string, debounceTime time.Duration) (*Watcher, error) {
	filename, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}

	updateCh := make(chan error, 1)

	out := &Watcher{
		watcher:      watcher,
		filename:     filename,
		debounceTime: debounceTime,
		onUpdate:     updateCh,
		Update:       updateCh,
	}

	go out.process()

	return out, nil
}

// notify drops the event when one is already pending.
func (w *Watcher) notify(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	select {
	case w.onUpdate <- err:
	default:
	}
}

func (w *Watcher) debounceUpdate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	if w.closed {
		return
	}

	w.timer = time.AfterFunc(w.debounceTime, func() {
		w.notify(nil)
	})
}

// Close stops watching. Update is closed once pending events are drained.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) finish() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.closed = true
	close(w.onUpdate)
}

func (w *Watcher) process() {
	defer w.finish()

	for {
		select {
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.notify(err)
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.debounceUpdate()
			}
		}
	}
}
