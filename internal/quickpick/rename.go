package quickpick

import (
	"context"
	"fmt"

	"github.com/ruminaider/termpick/internal/catalog"
	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/profile"
	"github.com/ruminaider/termpick/internal/settings"
)

// RenameWorkflow saves a picked local profile under a new name in the
// configured mapping. The operation is additive: the source entry is never
// touched, and the catalog is not refreshed afterwards.
type RenameWorkflow struct {
	store   settings.Store
	catalog *catalog.Catalog
	prompt  NamePrompt
	log     *logging.Logger
}

// NewRenameWorkflow wires the prompt used when an item's configure button
// fires.
func NewRenameWorkflow(store settings.Store, cat *catalog.Catalog, prompt NamePrompt, log *logging.Logger) *RenameWorkflow {
	if log == nil {
		log = logging.Discard()
	}
	return &RenameWorkflow{store: store, catalog: cat, prompt: prompt, log: log.Sub("rename")}
}

// Run prompts for a name, pre-filled with the item's profile name, and on
// acceptance writes a new {path, args} entry under it. Names already present
// in the configured mapping are rejected inline by the prompt. Cancelling or
// submitting an empty name writes nothing.
func (w *RenameWorkflow) Run(ctx context.Context, item Item) error {
	local, ok := item.Profile.(profile.Local)
	if !ok {
		return nil
	}

	defs, err := w.catalog.ConfiguredProfiles()
	if err != nil {
		return err
	}

	name, ok, err := w.prompt.Ask(ctx, NameRequest{
		Title:   "Enter profile name",
		Initial: local.ProfileName,
		Validate: func(s string) error {
			if _, exists := defs[s]; exists {
				return fmt.Errorf("a profile named %q already exists", s)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	if !ok || name == "" {
		return nil
	}

	defs[name] = local.Definition()
	if err := w.store.Set(w.catalog.ProfilesKey(), defs); err != nil {
		return fmt.Errorf("saving profile %q: %w", name, err)
	}
	w.log.Info().Str("source", local.ProfileName).Str("profile", name).Msg("profile saved")
	return nil
}
