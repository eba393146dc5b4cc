// Package detect discovers usable shells on the current platform and exposes
// them as auto-detected profiles.
package detect

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/profile"
	"golang.org/x/sync/errgroup"
)

// candidate is one probe target produced by the platform candidate list.
type candidate struct {
	Name string
	Path string
}

// Detector scans the platform for usable shells. Results cache until
// Invalidate; probing runs concurrently but output order follows the
// candidate list, so repeated scans are deterministic.
type Detector struct {
	mu      sync.Mutex
	scanned bool
	cached  []profile.Local
	source  func() []candidate
	log     *logging.Logger
}

// NewDetector creates a detector using the platform candidate list.
func NewDetector(log *logging.Logger) *Detector {
	if log == nil {
		log = logging.Discard()
	}
	return &Detector{
		source: candidates,
		log:    log.Sub("detect"),
	}
}

// Profiles returns the detected shells as auto-detected local profiles,
// scanning on first use.
func (d *Detector) Profiles(ctx context.Context) ([]profile.Local, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scanned {
		return d.cached, nil
	}

	cands := d.source()
	found := make([]bool, len(cands))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range cands {
		g.Go(func() error {
			found[i] = usable(c.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []profile.Local
	seen := make(map[string]bool, len(cands))
	for i, c := range cands {
		if !found[i] || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, profile.Local{
			ProfileName:  c.Name,
			Path:         c.Path,
			Icon:         iconForShell(c.Name),
			AutoDetected: true,
		})
	}

	d.log.Debug().Int("candidates", len(cands)).Int("found", len(out)).Msg("shell scan complete")
	d.scanned = true
	d.cached = out
	return out, nil
}

// Invalidate drops the cached scan so the next Profiles call rescans.
func (d *Detector) Invalidate() {
	d.mu.Lock()
	d.scanned = false
	d.cached = nil
	d.mu.Unlock()
}

// iconForShell maps a shell name to the icon id used in picker labels.
func iconForShell(name string) string {
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimSuffix(base, ".exe")
	switch base {
	case "bash", "sh", "dash", "ksh":
		return "terminal-bash"
	case "powershell", "pwsh", "powershell core":
		return "terminal-powershell"
	case "cmd", "command prompt":
		return "terminal-cmd"
	case "tmux":
		return "terminal-tmux"
	default:
		return "terminal"
	}
}
