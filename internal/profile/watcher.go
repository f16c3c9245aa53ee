package profile

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/litescript/ls-natal/internal/logging"
)

// Debounce is how long the profiles file must be quiet before a reload.
const Debounce = 100 * time.Millisecond

// Reload is emitted after the profiles file changed on disk. Err is set
// when the new contents could not be loaded; Profiles is then nil.
type Reload struct {
	Profiles []Profile
	Err      error
}

// Watcher reloads a profiles file whenever it changes.
//
// The containing directory is watched rather than the file itself, since
// editors and Save replace the file by renaming over it.
type Watcher struct {
	Path    string
	Reloads <-chan Reload // Read-only external channel

	reloads chan Reload
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
	log     *logging.Logger
}

// NewWatcher creates a watcher for the profiles file at path.
func NewWatcher(path string, log *logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}

	ch := make(chan Reload, 4)
	return &Watcher{
		Path:    abs,
		Reloads: ch,
		reloads: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
		log:     log.With("profile-watch"),
	}, nil
}

// Start begins watching. If it fails the watcher is closed and must not be
// stopped.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.Path), err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel. A reload that nobody
// received is dropped.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done
	close(w.reloads)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Debug("%s %s", event.Op, event.Name)
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= Debounce {
				pending = time.Time{}
				w.emit()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) emit() {
	profiles, err := Load(w.Path)
	r := Reload{Profiles: profiles, Err: err}
	if err != nil {
		w.log.Warn("reload failed: %v", err)
	} else {
		w.log.Info("reloaded %d profiles", len(profiles))
	}

	select {
	case w.reloads <- r:
	case <-w.stop:
	}
}
