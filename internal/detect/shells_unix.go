//go:build !windows

package detect

import (
	"os"
	"path/filepath"
	"strings"
)

// wellKnown lists shell paths probed on every unix platform, in the order
// they appear in the picker.
var wellKnown = []string{
	"/bin/bash",
	"/bin/zsh",
	"/usr/bin/zsh",
	"/usr/bin/fish",
	"/usr/local/bin/fish",
	"/bin/sh",
	"/usr/bin/pwsh",
	"/usr/local/bin/pwsh",
	"/usr/bin/tmux",
}

// candidates merges $SHELL, the well-known list, and /etc/shells, keeping the
// first occurrence of each path.
func candidates() []candidate {
	var cands []candidate
	seen := map[string]bool{}
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		cands = append(cands, candidate{Name: filepath.Base(path), Path: path})
	}

	add(os.Getenv("SHELL"))
	for _, p := range wellKnown {
		add(p)
	}
	for _, p := range etcShells() {
		add(p)
	}
	return cands
}

// etcShells returns the entries of /etc/shells, skipping comments and blanks.
func etcShells() []string {
	data, err := os.ReadFile("/etc/shells")
	if err != nil {
		return nil
	}
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

// usable reports whether path exists as an executable regular file.
func usable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
