// Package watch reports batches of changed definition files.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ddvk/ppl/hcldef"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

const DefaultDebounce = 300 * time.Millisecond

type Config struct {
	// Patterns select the files of interest, e.g. "defs/**/*.hcl".
	Patterns []string
	Excludes []string
	Debounce time.Duration
}

// Watcher watches every directory under the base of each pattern.
type Watcher struct {
	cfg Config
	fsw *fsnotify.Watcher
}

// New starts watching. Events are delivered once Run is called.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Patterns) == 0 {
		return nil, errors.New("watch: no patterns")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{cfg: cfg, fsw: fsw}
	for _, p := range cfg.Patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		if err := w.addTree(filepath.FromSlash(base)); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && hcldef.Excluded(path, w.cfg.Excludes) {
			return filepath.SkipDir
		}
		log.WithField("path", path).Debug("watching")
		return w.fsw.Add(path)
	})
}

// Match reports whether path is selected by the patterns and not excluded.
func (w *Watcher) Match(path string) bool {
	if hcldef.Excluded(path, w.cfg.Excludes) {
		return false
	}
	for _, p := range w.cfg.Patterns {
		if ok, _ := doublestar.PathMatch(p, path); ok {
			return true
		}
	}
	return false
}

// Run delivers debounced batches of changed paths to fn until ctx is done.
// fn runs on the calling goroutine, one batch at a time. Removed files are
// included; fn decides what a missing file means.
func (w *Watcher) Run(ctx context.Context, fn func(ctx context.Context, changed []string)) error {
	defer w.fsw.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.cfg.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						log.WithError(err).Warnf("cannot watch %s", ev.Name)
					}
					continue
				}
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.Match(ev.Name) {
				continue
			}
			log.Debugf("%s %s", ev.Op, ev.Name)
			pending[ev.Name] = struct{}{}
			timer.Reset(w.cfg.Debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			sort.Strings(batch)
			pending = make(map[string]struct{})
			fn(ctx, batch)
		}
	}
}
