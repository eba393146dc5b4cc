// Package plugins loads contributed-profile manifests and keeps the registry
// that makes contributed profiles resolvable at launch time.
package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ruminaider/termpick/internal/profile"
	"go.yaml.in/yaml/v3"
)

// Manifest is one plugin file under the plugins directory. A plugin declares
// its extension id and the profiles it contributes.
type Manifest struct {
	Extension string            `yaml:"extension"`
	Profiles  []ManifestProfile `yaml:"profiles"`
}

// ManifestProfile is one contributed profile declaration.
type ManifestProfile struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`

	// Command names the executable a contributed profile launches. Optional;
	// a profile without one can still be picked and set as default, just not
	// launched directly.
	Command string `yaml:"command,omitempty"`
}

// ParseManifest parses a manifest YAML file.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing plugin manifest: %w", err)
	}
	if m.Extension == "" {
		return Manifest{}, fmt.Errorf("parsing plugin manifest: missing extension id")
	}
	return m, nil
}

// Registry maps extension id + profile id to contributed profiles.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]profile.Contributed
	commands map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]profile.Contributed),
		commands: make(map[string]string),
	}
}

// Load builds a registry from every *.yaml manifest in dir. A missing
// directory yields an empty registry.
func Load(dir string) (*Registry, error) {
	r := NewRegistry()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("listing plugins: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading plugin %q: %w", e.Name(), err)
		}
		m, err := ParseManifest(data)
		if err != nil {
			return nil, fmt.Errorf("plugin %q: %w", e.Name(), err)
		}
		for _, p := range m.Profiles {
			r.register(profile.Contributed{
				ExtensionID: m.Extension,
				ID:          p.ID,
				Title:       p.Title,
				Icon:        p.Icon,
				Color:       p.Color,
			}, p.Command)
		}
	}

	return r, nil
}

// Register makes a contributed profile resolvable. Registering an already
// known (extension id, profile id) pair overwrites it.
func (r *Registry) Register(p profile.Contributed) {
	r.register(p, "")
}

func (r *Registry) register(p profile.Contributed, command string) {
	key := p.ExtensionID + "/" + p.ID
	r.mu.Lock()
	r.profiles[key] = p
	if command != "" {
		r.commands[key] = command
	}
	r.mu.Unlock()
}

// Lookup returns the contributed profile for the given ids.
func (r *Registry) Lookup(extensionID, id string) (profile.Contributed, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[extensionID+"/"+id]
	return p, ok
}

// Command returns the launch command declared for the given ids, if any.
func (r *Registry) Command(extensionID, id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[extensionID+"/"+id]
	return c, ok
}

// Contributed lists all registered profiles, ordered by extension id then
// profile id.
func (r *Registry) Contributed() []profile.Contributed {
	r.mu.RLock()
	keys := make([]string, 0, len(r.profiles))
	for k := range r.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]profile.Contributed, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.profiles[k])
	}
	r.mu.RUnlock()
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
