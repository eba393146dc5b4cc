package profile

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Definition is the settings-file shape of one configured profile entry,
// keyed by profile name in the platform-scoped profiles mapping.
type Definition struct {
	Path  string `yaml:"path,omitempty"`
	Args  Args   `yaml:"args,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`

	// Command is the retired pre-1.0 shape. It is still parsed so old
	// settings files produce a visible LegacyCommand profile instead of
	// disappearing from the list.
	Command string `yaml:"command,omitempty"`
}

// IsZero reports whether the entry carries no usable content (e.g. a null
// YAML value).
func (d Definition) IsZero() bool {
	return d.Path == "" && d.Command == ""
}

// Profile converts the named definition into its Profile variant. A
// command-bearing entry without a path becomes LegacyCommand; everything
// else is a configured Local profile.
func (d Definition) Profile(name string) Profile {
	if d.Command != "" && d.Path == "" {
		return LegacyCommand{ProfileName: name, Command: d.Command}
	}
	return Local{
		ProfileName: name,
		Path:        d.Path,
		Args:        d.Args,
		Icon:        d.Icon,
		Color:       d.Color,
	}
}

// ParseDefinitions decodes a raw settings value (as returned by the store)
// into the name -> definition mapping. A nil value yields an empty map.
func ParseDefinitions(v any) (map[string]Definition, error) {
	if v == nil {
		return map[string]Definition{}, nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding profiles value: %w", err)
	}
	var defs map[string]Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing profiles value: %w", err)
	}
	if defs == nil {
		defs = map[string]Definition{}
	}
	return defs, nil
}
