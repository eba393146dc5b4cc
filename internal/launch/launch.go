// Package launch starts an interactive shell session for a resolved pick.
package launch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ruminaider/termpick/internal/logging"
	"github.com/ruminaider/termpick/internal/plugins"
	"github.com/ruminaider/termpick/internal/profile"
	"github.com/ruminaider/termpick/internal/quickpick"
)

// Spec describes a shell command ready to start.
type Spec struct {
	SessionID uuid.UUID
	Name      string
	Path      string
	Args      []string
	Cwd       string
}

// Run starts the chosen profile attached to the current terminal and blocks
// until the shell exits. Contributed profiles resolve their executable
// through the plugin registry.
func Run(ctx context.Context, res *quickpick.Result, reg *plugins.Registry, log *logging.Logger) error {
	if log == nil {
		log = logging.Discard()
	}
	log = log.Sub("launch")

	spec, err := newSpec(res, reg)
	if err != nil {
		return err
	}
	log.Debug().
		Str("session", spec.SessionID.String()).
		Str("path", spec.Path).
		Strs("args", spec.Args).
		Str("cwd", spec.Cwd).
		Msg("starting shell")
	return run(ctx, spec, log)
}

func newSpec(res *quickpick.Result, reg *plugins.Registry) (*Spec, error) {
	spec := &Spec{
		SessionID: uuid.New(),
		Name:      res.ProfileName,
		Cwd:       res.Cwd,
	}
	switch p := res.Profile.(type) {
	case profile.Local:
		spec.Path = p.Path
		spec.Args = p.Args.List()
	case profile.Contributed:
		command, ok := reg.Command(p.ExtensionID, p.ID)
		if !ok || command == "" {
			return nil, fmt.Errorf("extension %s provides no launch command for profile %q", p.ExtensionID, p.ID)
		}
		fields := strings.Fields(command)
		spec.Path = fields[0]
		spec.Args = fields[1:]
	default:
		return nil, fmt.Errorf("profile %q cannot be launched", res.ProfileName)
	}
	return spec, nil
}
