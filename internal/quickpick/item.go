package quickpick

import (
	"context"

	"github.com/ruminaider/termpick/internal/profile"
)

// Mode selects what accepting a profile does: start a session from it, or
// persist it as the configured default.
type Mode string

const (
	ModeCreateInstance Mode = "createInstance"
	ModeSetDefault     Mode = "setDefault"
)

// KeyModifiers records the modifier keys held when the user accepted an
// item.
type KeyModifiers struct {
	Alt  bool
	Ctrl bool
}

// Item is one row of the built pick list. Items are created fresh for every
// workflow invocation and never persisted. A Separator row carries only its
// Label.
type Item struct {
	Label        string
	Description  string
	Separator    bool
	Profile      profile.Profile
	ProfileName  string
	CanConfigure bool
}

// PickRequest is what a Picker presents.
type PickRequest struct {
	Placeholder string
	Items       []Item
}

// Selection is a picker resolution: the chosen item plus captured modifier
// state. Configure reports that the item's configure button fired instead of
// a plain accept.
type Selection struct {
	Item      Item
	KeyMods   KeyModifiers
	Configure bool
}

// Picker presents the built list and resolves to the user's selection, or
// nil when the picker was dismissed.
type Picker interface {
	Pick(ctx context.Context, req PickRequest) (*Selection, error)
}

// NameRequest configures a name prompt.
type NameRequest struct {
	Title    string
	Initial  string
	Validate func(string) error
}

// NamePrompt asks the user for a profile name. ok is false when the prompt
// was cancelled.
type NamePrompt interface {
	Ask(ctx context.Context, req NameRequest) (name string, ok bool, err error)
}

// Result is a resolved selection handed back to the workflow caller. Cwd is
// carried through from the createInstance request.
type Result struct {
	Profile     profile.Profile
	ProfileName string
	KeyMods     KeyModifiers
	Cwd         string
}
