package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ruminaider/termpick/internal/catalog"
	"github.com/ruminaider/termpick/internal/detect"
	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/paths"
	"github.com/ruminaider/termpick/internal/plugins"
	"github.com/ruminaider/termpick/internal/quickpick"
	"github.com/ruminaider/termpick/internal/settings"
)

func newLogger() *logging.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logging.New(nil, level)
}

// app bundles the store, registry and catalog behind every command.
type app struct {
	log   *logging.Logger
	store *settings.FileStore
	reg   *plugins.Registry
	cat   *catalog.Catalog
	cwd   string

	stopWatch context.CancelFunc
}

// newApp wires the profile sources for the given working directory. An empty
// cwd resolves to the current directory.
func newApp(cwd string) (*app, error) {
	log := newLogger()

	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cwd = wd
	}

	reg, err := plugins.Load(paths.PluginsDir())
	if err != nil {
		return nil, err
	}

	store, err := settings.Open(paths.SettingsFile(), paths.WorkspaceSettingsFile(cwd), log)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(store, detect.NewDetector(log), reg, log)

	a := &app{log: log, store: store, reg: reg, cat: cat, cwd: cwd}

	// Refresh the catalog when the settings files change on disk while the
	// picker is open, so writes merge against the latest document.
	watcher, err := settings.NewWatcher(func() {
		if err := cat.Refresh(); err != nil {
			log.Warn().Err(err).Msg("refreshing catalog")
		}
	}, log, store.UserPath(), store.WorkspacePath())
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.stopWatch = cancel
	go func() { _ = watcher.Run(ctx) }()

	return a, nil
}

// Close stops the settings watcher.
func (a *app) Close() {
	a.stopWatch()
}

func (a *app) workflow(picker quickpick.Picker, prompt quickpick.NamePrompt) *quickpick.Workflow {
	return quickpick.NewWorkflow(a.cat, a.store, picker, prompt, a.log)
}
