// Package settings persists termpick configuration as nested YAML documents
// addressed by dotted keys. Two scopes exist: the user file under
// ~/.termpick and an optional per-directory workspace overlay. Reads consult
// the workspace first; writes always land in the user file.
package settings

// Store is the key/value view over the settings files. Implementations are
// safe for concurrent readers; concurrent writers are last-write-wins, which
// callers accept by serializing interactive flows.
type Store interface {
	// Get returns the raw value at a dotted key, and whether it was present
	// in either scope.
	Get(key string) (any, bool)

	// GetString returns the string value at key, or "" when absent or not a
	// string.
	GetString(key string) string

	// Set writes value at key in the user scope and persists the user file.
	Set(key string, value any) error

	// Reload re-reads the backing files from disk.
	Reload() error
}
