package glhelpers

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ReloadEvent reports fresh sources for a program whose files changed.
// Err is set when the sources could not be read; Code is then empty.
type ReloadEvent struct {
	Program string
	Code    ShaderCode
	Err     error
}

// Watcher watches the source files of a manifest and emits a ReloadEvent
// per changed program. It only reads files; rebuilding the program is left
// to the goroutine owning the graphics context.
type Watcher struct {
	manifest *Manifest
	debounce time.Duration
	log      logrus.FieldLogger

	fs       *fsnotify.Watcher
	programs map[string][]string // file path -> program names
	events   chan ReloadEvent
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// WatchOption configures a Watcher
type WatchOption func(*Watcher)

// WithDebounce sets how long the watcher waits for a burst of file events
// to settle before reloading. Default is 50ms.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger for watcher errors.
func WithWatchLogger(l logrus.FieldLogger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWatcher starts watching every directory holding a source file of m.
func NewWatcher(m *Manifest, opts ...WatchOption) (*Watcher, error) {
	w := &Watcher{
		manifest: m,
		debounce: 50 * time.Millisecond,
		log:      logrus.StandardLogger(),
		programs: make(map[string][]string),
		events:   make(chan ReloadEvent, 16),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]bool)
	for _, name := range m.Programs() {
		for _, f := range m.Files(name) {
			w.programs[f] = append(w.programs[f], name)
			dirs[filepath.Dir(f)] = true
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "shader watcher")
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "shader watcher: watch %q", dir)
		}
	}
	w.fs = fsw

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Events returns the channel of reloads. It is closed by Close.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Close stops watching and closes the Events channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.events)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			names := w.programs[filepath.Clean(ev.Name)]
			if len(names) == 0 {
				continue
			}
			for _, name := range names {
				pending[name] = true
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithField("op", "watch").Warn(err)
		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			pending = make(map[string]bool)
			for _, name := range names {
				code, err := w.manifest.Code(name)
				select {
				case w.events <- ReloadEvent{Program: name, Code: code, Err: err}:
				case <-w.done:
					return
				}
			}
		}
	}
}
