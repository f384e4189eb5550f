package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/teranos/smufl/errors"
	"github.com/teranos/smufl/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// RunCallback receives the outcome of every run started by a Watcher.
type RunCallback func(*Report, error)

// Watcher reruns the pipeline whenever the metadata file changes.
// Runs happen one at a time on the goroutine calling Watch.
type Watcher struct {
	fs       afero.Fs
	opts     Options
	path     string
	watcher  *fsnotify.Watcher
	onRun    RunCallback
	log      *zap.SugaredLogger
	Debounce time.Duration
}

// NewWatcher watches the directory holding opts.Metadata, so that editors
// replacing the file by rename are noticed too.
func NewWatcher(fs afero.Fs, opts Options, onRun RunCallback) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	path := filepath.Clean(opts.Metadata)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(path))
	}

	return &Watcher{
		fs:       fs,
		opts:     opts,
		path:     path,
		watcher:  watcher,
		onRun:    onRun,
		log:      logger.ComponentLogger("glyphgen.watch"),
		Debounce: DefaultDebounce,
	}, nil
}

// Watch runs the pipeline once, then again after every change to the
// metadata file, until ctx is done. It closes the watcher on return.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.watcher.Close()

	w.run()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			w.log.Debugw("Metadata changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			pending = time.After(w.Debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", "error", err)

		case <-pending:
			pending = nil
			w.run()
		}
	}
}

func (w *Watcher) run() {
	report, err := Run(w.fs, w.opts)
	if err != nil {
		w.log.Errorw("Generation failed", "error", err)
	}
	w.onRun(report, err)
}
