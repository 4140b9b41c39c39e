package main

import (
	"context"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"go.abhg.dev/talkdeck/internal/errdefer"
)

// DeckGenerator renders a single deck file.
type DeckGenerator interface {
	Generate(path string) error
}

var _ DeckGenerator = (*Generator)(nil)

// Watcher renders deck files again when they change.
type Watcher struct {
	Log       *log.Logger
	Generator DeckGenerator

	// ready, if non-nil, is closed once the watcher
	// has started listening for changes.
	ready chan struct{}
}

// Watch blocks until ctx is done,
// regenerating each of the given deck files when it is written to.
//
// Files are watched through their parent directories
// so that editors that replace files on save are supported.
// Failures to regenerate a deck are logged and do not stop the watch.
func (w *Watcher) Watch(ctx context.Context, decks []string) (err error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, fsw)

	// absolute path => path as specified
	watched := make(map[string]string, len(decks))
	dirs := make(map[string]struct{})
	for _, deck := range decks {
		abs, err := filepath.Abs(deck)
		if err != nil {
			return errtrace.Wrap(err)
		}
		watched[abs] = deck

		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}
		if err := fsw.Add(dir); err != nil {
			return errtrace.Errorf("watch %v: %w", dir, err)
		}
		w.Log.Debug("watching", "dir", dir)
	}

	w.Log.Info("watching for changes", "decks", len(decks))
	if w.ready != nil {
		close(w.ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			deck, ok := watched[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}

			w.Log.Info("rebuilding", "path", deck, "op", ev.Op)
			if err := w.Generator.Generate(deck); err != nil {
				w.Log.Error("rebuild failed", "path", deck, "error", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.Log.Warn("watch error", "error", err)
		}
	}
}
