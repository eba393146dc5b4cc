package quickpick

import (
	"errors"
	"fmt"

	"github.com/ruminaider/termpick/internal/catalog"
	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/profile"
	"github.com/ruminaider/termpick/internal/settings"
)

// ErrLegacyCommand reports that a retired command-shaped profile reached
// resolution. Current code never builds one; hitting this means an old
// settings entry slipped through, and it fails loudly instead of being
// swallowed.
var ErrLegacyCommand = errors.New("legacy command profile cannot be resolved")

// Resolver performs the persistence and registration side effects for an
// accepted picker selection.
type Resolver struct {
	store   settings.Store
	catalog *catalog.Catalog
	log     *logging.Logger
}

// NewResolver creates a resolver writing through the given store.
func NewResolver(store settings.Store, cat *catalog.Catalog, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{store: store, catalog: cat, log: log.Sub("resolver")}
}

// Resolve routes the selection through the (variant, mode) table.
// createInstance returns the selection untouched, with modifier state and
// cwd attached, and never writes. setDefault persists the default-profile
// key (writing an auto-detected profile into the configured mapping first),
// registers contributed profiles, and returns a result only for the
// contributed variant.
func (r *Resolver) Resolve(sel Selection, mode Mode, cwd string) (*Result, error) {
	switch p := sel.Item.Profile.(type) {
	case profile.Contributed:
		if mode == ModeSetDefault {
			r.catalog.Registry().Register(p)
			if err := r.store.Set(r.catalog.DefaultProfileKey(), p.Title); err != nil {
				return nil, fmt.Errorf("setting default profile: %w", err)
			}
			r.log.Info().Str("profile", p.Title).Str("extension", p.ExtensionID).Msg("default profile set")
			return &Result{Profile: p, ProfileName: p.Title, KeyMods: sel.KeyMods}, nil
		}
		return &Result{Profile: p, ProfileName: p.Title, KeyMods: sel.KeyMods, Cwd: cwd}, nil

	case profile.Local:
		if mode == ModeSetDefault {
			if p.AutoDetected {
				if err := r.persistProfile(p); err != nil {
					return nil, err
				}
			}
			if err := r.store.Set(r.catalog.DefaultProfileKey(), p.ProfileName); err != nil {
				return nil, fmt.Errorf("setting default profile: %w", err)
			}
			if err := r.catalog.Refresh(); err != nil {
				return nil, err
			}
			r.log.Info().Str("profile", p.ProfileName).Msg("default profile set")
			return nil, nil
		}
		return &Result{Profile: p, ProfileName: p.ProfileName, KeyMods: sel.KeyMods, Cwd: cwd}, nil

	case profile.LegacyCommand:
		return nil, fmt.Errorf("resolving profile %q: %w", p.ProfileName, ErrLegacyCommand)

	default:
		return nil, fmt.Errorf("resolving profile %q: unknown profile variant", sel.Item.ProfileName)
	}
}

// persistProfile writes a detected profile's {path, args} entry into the
// configured mapping so the default name resolves on the next start.
func (r *Resolver) persistProfile(p profile.Local) error {
	defs, err := r.catalog.ConfiguredProfiles()
	if err != nil {
		return err
	}
	defs[p.ProfileName] = p.Definition()
	if err := r.store.Set(r.catalog.ProfilesKey(), defs); err != nil {
		return fmt.Errorf("persisting profile %q: %w", p.ProfileName, err)
	}
	return nil
}
