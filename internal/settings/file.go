package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ruminaider/termpick/internal/logging"
	"go.yaml.in/yaml/v3"
)

// FileStore implements Store over a user settings file plus an optional
// workspace overlay file.
type FileStore struct {
	mu            sync.RWMutex
	userPath      string
	workspacePath string
	user          map[string]any
	workspace     map[string]any
	log           *logging.Logger
}

// Open loads the user settings file and, when workspacePath is non-empty,
// the workspace overlay. Missing files are treated as empty documents.
func Open(userPath, workspacePath string, log *logging.Logger) (*FileStore, error) {
	if log == nil {
		log = logging.Discard()
	}
	s := &FileStore{
		userPath:      userPath,
		workspacePath: workspacePath,
		log:           log.Sub("settings"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// UserPath returns the path of the user-scope settings file.
func (s *FileStore) UserPath() string { return s.userPath }

// WorkspacePath returns the path of the workspace overlay, or "".
func (s *FileStore) WorkspacePath() string { return s.workspacePath }

// Reload re-reads both scopes from disk.
func (s *FileStore) Reload() error {
	user, err := loadFile(s.userPath)
	if err != nil {
		return err
	}
	workspace := map[string]any{}
	if s.workspacePath != "" {
		workspace, err = loadFile(s.workspacePath)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.user = user
	s.workspace = workspace
	s.mu.Unlock()

	s.log.Debug().Str("user", s.userPath).Str("workspace", s.workspacePath).Msg("settings loaded")
	return nil
}

// Get looks the dotted key up in the workspace scope first, then the user
// scope.
func (s *FileStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := lookup(s.workspace, key); ok {
		return v, true
	}
	return lookup(s.user, key)
}

// GetString returns the string at key, or "" when absent or not a string.
func (s *FileStore) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Set writes value at the dotted key in the user scope and persists the user
// file.
func (s *FileStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	setPath(s.user, key, value)
	if err := saveFile(s.userPath, s.user); err != nil {
		return err
	}
	s.log.Debug().Str("key", key).Msg("settings written")
	return nil
}

func loadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading settings %q: %w", path, err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing settings %q: %w", path, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func saveFile(path string, m map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings %q: %w", path, err)
	}
	return nil
}

// lookup walks nested mappings along the dotted key.
func lookup(m map[string]any, key string) (any, bool) {
	cur := any(m)
	for _, part := range strings.Split(key, ".") {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// setPath writes value at the dotted key, creating intermediate mappings.
// A non-mapping value in the middle of the path is replaced.
func setPath(m map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
