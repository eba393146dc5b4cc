// Package catalog aggregates terminal profiles from the settings store, the
// platform shell scan, and the plugin registry into one read-only view.
package catalog

import (
	"context"
	"sort"

	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/plugins"
	"github.com/ruminaider/termpick/internal/profile"
	"github.com/ruminaider/termpick/internal/settings"
)

// Detector supplies auto-detected local profiles.
type Detector interface {
	Profiles(ctx context.Context) ([]profile.Local, error)
	Invalidate()
}

// Catalog is a read projection over the three profile sources. It holds no
// state of its own; every accessor reads the sources at call time.
type Catalog struct {
	store    settings.Store
	detector Detector
	registry *plugins.Registry
	platform string
	log      *logging.Logger
}

// New creates a catalog scoped to the current platform.
func New(store settings.Store, detector Detector, registry *plugins.Registry, log *logging.Logger) *Catalog {
	if log == nil {
		log = logging.Discard()
	}
	return &Catalog{
		store:    store,
		detector: detector,
		registry: registry,
		platform: settings.PlatformKey(),
		log:      log.Sub("catalog"),
	}
}

// Platform returns the platform key the catalog is scoped to.
func (c *Catalog) Platform() string { return c.platform }

// ProfilesKey returns the dotted settings key of the profiles mapping.
func (c *Catalog) ProfilesKey() string { return settings.ProfilesKey(c.platform) }

// DefaultProfileKey returns the dotted settings key of the default-profile
// name.
func (c *Catalog) DefaultProfileKey() string { return settings.DefaultProfileKey(c.platform) }

// ConfiguredProfiles returns the raw name -> definition mapping from the
// settings store, used for uniqueness checks and writes.
func (c *Catalog) ConfiguredProfiles() (map[string]profile.Definition, error) {
	raw, _ := c.store.Get(c.ProfilesKey())
	return profile.ParseDefinitions(raw)
}

// AvailableProfiles returns all local profiles: configured entries in name
// order, then auto-detected shells. Legacy command-shaped entries surface
// as LegacyCommand so downstream code sees them instead of losing them.
// Detected shells whose name is already configured are skipped; a configured
// entry owns its name.
func (c *Catalog) AvailableProfiles(ctx context.Context) ([]profile.Profile, error) {
	defs, err := c.ConfiguredProfiles()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []profile.Profile
	for _, name := range names {
		d := defs[name]
		if d.IsZero() {
			continue
		}
		out = append(out, d.Profile(name))
	}

	detected, err := c.detector.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range detected {
		if d, ok := defs[p.ProfileName]; ok && !d.IsZero() {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// ContributedProfiles returns the plugin-supplied profiles.
func (c *Catalog) ContributedProfiles() []profile.Contributed {
	return c.registry.Contributed()
}

// Registry exposes the plugin registry for registration and launch
// resolution.
func (c *Catalog) Registry() *plugins.Registry { return c.registry }

// ConfiguredDefaultProfileName returns the configured default profile name,
// or "" when none is set.
func (c *Catalog) ConfiguredDefaultProfileName() string {
	return c.store.GetString(c.DefaultProfileKey())
}

// Refresh reloads the settings store from disk and drops the detector cache
// so the next read reflects current state.
func (c *Catalog) Refresh() error {
	if err := c.store.Reload(); err != nil {
		return err
	}
	c.detector.Invalidate()
	c.log.Debug().Msg("catalog refreshed")
	return nil
}
