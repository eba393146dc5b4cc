package settings

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ruminaider/termpick/internal/logging"
)

// debounceDelay is how long after the last write event the change callback
// fires. Editors typically produce several events per save.
const debounceDelay = 500 * time.Millisecond

// Watcher watches settings files for changes and invokes a callback after a
// debounce window, letting a long-lived picker process pick up external
// edits.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	paths    []string
	log      *logging.Logger
}

// NewWatcher creates a file watcher for the given paths. Empty and missing
// paths are skipped.
func NewWatcher(onChange func(), log *logging.Logger, paths ...string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating settings watcher: %w", err)
	}
	if log == nil {
		log = logging.Discard()
	}

	var watched []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := watcher.Add(p); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watching %q: %w", p, err)
		}
		watched = append(watched, p)
	}

	return &Watcher{
		watcher:  watcher,
		onChange: onChange,
		paths:    watched,
		log:      log.Sub("settings-watch"),
	}, nil
}

// Paths returns the files actually being watched.
func (w *Watcher) Paths() []string { return w.paths }

// Run blocks until ctx is cancelled, invoking the change callback after
// writes settle.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					w.log.Debug().Str("file", event.Name).Msg("settings changed")
					w.onChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("settings watcher error")
		}
	}
}
