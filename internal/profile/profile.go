package profile

// Profile is one pickable way to start a terminal session. The set of
// variants is closed: Local (user-configured or auto-detected), Contributed
// (supplied by a plugin manifest), and LegacyCommand (a retired settings
// shape kept parseable so old files surface instead of vanishing). Exactly
// one variant matches any given profile; code that dispatches on variant
// uses an exhaustive type switch.
type Profile interface {
	// Name returns the human-readable profile name shown in pickers and
	// persisted as the default-profile value.
	Name() string

	isProfile()
}

// Local is a profile backed by an executable path on this machine.
// AutoDetected distinguishes profiles found by a platform scan from ones the
// user wrote into settings.
type Local struct {
	ProfileName  string
	Path         string
	Args         Args
	Icon         string
	Color        string
	AutoDetected bool
}

func (Local) isProfile() {}

// Name returns the configured profile name.
func (p Local) Name() string { return p.ProfileName }

// Definition returns the settings-file entry persisted for this profile:
// path, plus args when present. Icon and color are display-only and are not
// written back.
func (p Local) Definition() Definition {
	return Definition{Path: p.Path, Args: p.Args}
}

// Contributed is a profile supplied by a plugin, identified by extension id
// plus profile id rather than a filesystem path. The definition is owned by
// the plugin registry; these fields are all termpick sees of it.
type Contributed struct {
	ExtensionID string
	ID          string
	Title       string
	Icon        string
	Color       string
}

func (Contributed) isProfile() {}

// Name returns the contributed profile's title.
func (p Contributed) Name() string { return p.Title }

// LegacyCommand is the retired command-string profile shape. It is never
// built by current code paths; it only appears when an old settings file
// still carries a `command` entry. Resolution rejects it loudly.
type LegacyCommand struct {
	ProfileName string
	Command     string
}

func (LegacyCommand) isProfile() {}

// Name returns the legacy entry's profile name.
func (p LegacyCommand) Name() string { return p.ProfileName }
