package levels

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiet is how long a directory must stay still before a batch of
// changes is reported. Editors often write a file several times per save.
const DefaultQuiet = 150 * time.Millisecond

// Watcher batches YAML changes in the watched directories. The fsnotify loop
// runs on its own goroutine; the game loop collects batches with Poll.
type Watcher struct {
	fs    *fsnotify.Watcher
	quiet time.Duration

	batches chan []string
	errs    chan error
	done    chan struct{}
	stop    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fsw,
		quiet:   DefaultQuiet,
		batches: make(chan []string, 4),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Poll returns every file reported since the last call, sorted and without
// duplicates. It never blocks.
func (w *Watcher) Poll() []string {
	var changed []string
	for {
		select {
		case batch := <-w.batches:
			changed = append(changed, batch...)
		default:
			slices.Sort(changed)
			return slices.Compact(changed)
		}
	}
}

// Err returns the most recent watch error, if one arrived since the last call.
func (w *Watcher) Err() error {
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

func (w *Watcher) loop() {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.quiet)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !isDataFile(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(w.quiet)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for name := range pending {
				batch = append(batch, name)
			}
			clear(pending)
			select {
			case w.batches <- batch:
			case <-w.done:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Keep only the newest error.
			select {
			case <-w.errs:
			default:
			}
			w.errs <- err
		}
	}
}

func isDataFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
