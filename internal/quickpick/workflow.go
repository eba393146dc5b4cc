// Package quickpick builds the profile pick list, presents it through a
// Picker, and routes the selection through mode-dependent persistence.
package quickpick

import (
	"context"

	"github.com/ruminaider/termpick/internal/catalog"
	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/settings"
)

// Workflow drives one picker invocation end to end: catalog read, list
// build, picker, then resolution. Invocations are sequential; nothing here
// runs concurrently with another call on the same Workflow.
type Workflow struct {
	catalog  *catalog.Catalog
	builder  *Builder
	resolver *Resolver
	rename   *RenameWorkflow
	picker   Picker
	log      *logging.Logger
}

// NewWorkflow wires the workflow with its collaborators.
func NewWorkflow(cat *catalog.Catalog, store settings.Store, picker Picker, prompt NamePrompt, log *logging.Logger) *Workflow {
	if log == nil {
		log = logging.Discard()
	}
	return &Workflow{
		catalog:  cat,
		builder:  NewBuilder(),
		resolver: NewResolver(store, cat, log),
		rename:   NewRenameWorkflow(store, cat, prompt, log),
		picker:   picker,
		log:      log.Sub("quickpick"),
	}
}

// ShowAndGetResult presents the pick list and resolves the selection. It
// returns nil without error when the picker is dismissed, leaving all state
// untouched. A configure trigger runs the rename workflow and re-presents
// the same items. cwd rides along on createInstance results.
func (w *Workflow) ShowAndGetResult(ctx context.Context, mode Mode, cwd string) (*Result, error) {
	available, err := w.catalog.AvailableProfiles(ctx)
	if err != nil {
		return nil, err
	}
	items := w.builder.Build(available, w.catalog.ContributedProfiles(), w.catalog.ConfiguredDefaultProfileName())
	w.log.Debug().Int("items", len(items)).Str("mode", string(mode)).Msg("pick list built")

	req := PickRequest{Placeholder: placeholder(mode), Items: items}
	for {
		sel, err := w.picker.Pick(ctx, req)
		if err != nil {
			return nil, err
		}
		if sel == nil {
			return nil, nil
		}
		if sel.Configure {
			if err := w.rename.Run(ctx, sel.Item); err != nil {
				return nil, err
			}
			continue
		}
		return w.resolver.Resolve(*sel, mode, cwd)
	}
}

func placeholder(mode Mode) string {
	if mode == ModeSetDefault {
		return "Select your default profile"
	}
	return "Select the profile to create"
}
