package profile

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Args holds a profile's launch arguments. The settings format accepts
// either a single string or a sequence of strings; both forms round-trip
// through YAML unchanged.
type Args struct {
	value  string
	list   []string
	isList bool
}

// StringArgs returns Args carrying a single argument string.
func StringArgs(s string) Args {
	return Args{value: s}
}

// ListArgs returns Args carrying an argument sequence.
func ListArgs(items ...string) Args {
	return Args{list: items, isList: true}
}

// IsZero reports whether no arguments are set. yaml omits zero Args under
// the omitempty tag.
func (a Args) IsZero() bool {
	return !a.isList && a.value == ""
}

// IsList reports whether the args were given as a sequence.
func (a Args) IsList() bool { return a.isList }

// List returns the arguments as a slice suitable for exec. A string-form
// value is returned as a single element.
func (a Args) List() []string {
	if a.isList {
		return a.list
	}
	if a.value == "" {
		return nil
	}
	return []string{a.value}
}

// String renders the display form used in picker descriptions. A string
// value is returned verbatim. A sequence joins with single spaces, wrapping
// any argument that contains a space in double quotes; embedded double
// quotes are left as-is.
func (a Args) String() string {
	if !a.isList {
		return a.value
	}
	quoted := make([]string, len(a.list))
	for i, arg := range a.list {
		if strings.Contains(arg, " ") {
			arg = `"` + arg + `"`
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (a *Args) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("parsing args: %w", err)
		}
		*a = Args{value: s}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("parsing args: %w", err)
		}
		*a = Args{list: items, isList: true}
		return nil
	default:
		return fmt.Errorf("parsing args: expected string or sequence")
	}
}

// MarshalYAML writes back the same form the args were read in.
func (a Args) MarshalYAML() (any, error) {
	if a.isList {
		return a.list, nil
	}
	return a.value, nil
}
