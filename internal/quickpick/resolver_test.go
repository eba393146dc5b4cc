package quickpick_test

import (
	"os"
	"testing"

	"github.com/ruminaider/termpick/internal/profile"
	"github.com/ruminaider/termpick/internal/quickpick"
	"github.com/ruminaider/termpick/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectionOf(p profile.Profile, mods quickpick.KeyModifiers) quickpick.Selection {
	return quickpick.Selection{
		Item:    quickpick.Item{Profile: p, ProfileName: p.Name()},
		KeyMods: mods,
	}
}

// settingsBytes snapshots the persisted user settings file, nil when nothing
// has been written yet.
func settingsBytes(t *testing.T, fx *fixture) []byte {
	t.Helper()
	data, err := os.ReadFile(fx.store.UserPath())
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return data
}

func TestResolveContributedSetDefault(t *testing.T) {
	fx := newFixture(t, "")
	res := quickpick.NewResolver(fx.store, fx.cat, nil)
	p := profile.Contributed{
		ExtensionID: "termpick.wsl",
		ID:          "ubuntu",
		Title:       "Ubuntu (WSL)",
		Icon:        "$(terminal-ubuntu)",
		Color:       "#E95420",
	}

	got, err := res.Resolve(selectionOf(p, quickpick.KeyModifiers{Alt: true}), quickpick.ModeSetDefault, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.KeyMods.Alt)
	assert.Empty(t, got.Cwd)

	assert.Equal(t, "Ubuntu (WSL)", fx.store.GetString(fx.cat.DefaultProfileKey()))

	reg, ok := fx.reg.Lookup("termpick.wsl", "ubuntu")
	require.True(t, ok)
	assert.Equal(t, "$(terminal-ubuntu)", reg.Icon)
	assert.Equal(t, "#E95420", reg.Color)

	// Contributed profiles never land in the profiles map.
	_, ok = fx.store.Get(fx.cat.ProfilesKey())
	assert.False(t, ok)
}

func TestResolveAutoDetectedSetDefault(t *testing.T) {
	fx := newFixture(t, "")
	res := quickpick.NewResolver(fx.store, fx.cat, nil)
	p := profile.Local{
		ProfileName:  "fish",
		Path:         "/usr/bin/fish",
		Args:         profile.ListArgs("--login"),
		AutoDetected: true,
	}

	got, err := res.Resolve(selectionOf(p, quickpick.KeyModifiers{}), quickpick.ModeSetDefault, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	defs, err := fx.cat.ConfiguredProfiles()
	require.NoError(t, err)
	require.Contains(t, defs, "fish")
	assert.Equal(t, "/usr/bin/fish", defs["fish"].Path)
	assert.Equal(t, []string{"--login"}, defs["fish"].Args.List())
	assert.Equal(t, "fish", fx.cat.ConfiguredDefaultProfileName())

	// Becoming the default invalidates cached detection results.
	assert.Equal(t, 1, fx.det.invalidated)
}

func TestResolveConfiguredSetDefault(t *testing.T) {
	fx := newFixture(t, `
terminal:
  profiles:
    `+settings.PlatformKey()+`:
      zsh:
        path: /bin/zsh
`)
	res := quickpick.NewResolver(fx.store, fx.cat, nil)
	p := profile.Local{ProfileName: "zsh", Path: "/bin/zsh"}

	got, err := res.Resolve(selectionOf(p, quickpick.KeyModifiers{}), quickpick.ModeSetDefault, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, "zsh", fx.cat.ConfiguredDefaultProfileName())

	// The profiles map keeps exactly the entry it started with.
	defs, err := fx.cat.ConfiguredProfiles()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "/bin/zsh", defs["zsh"].Path)
}

func TestResolveCreateInstanceNeverWrites(t *testing.T) {
	cases := []struct {
		name string
		p    profile.Profile
	}{
		{"configured local", profile.Local{ProfileName: "zsh", Path: "/bin/zsh"}},
		{"auto-detected local", profile.Local{ProfileName: "fish", Path: "/usr/bin/fish", AutoDetected: true}},
		{"contributed", profile.Contributed{ExtensionID: "termpick.wsl", ID: "ubuntu", Title: "Ubuntu"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newFixture(t, `
terminal:
  profiles:
    `+settings.PlatformKey()+`:
      zsh:
        path: /bin/zsh
`)
			res := quickpick.NewResolver(fx.store, fx.cat, nil)
			before := settingsBytes(t, fx)
			regBefore := fx.reg.Len()

			got, err := res.Resolve(selectionOf(tc.p, quickpick.KeyModifiers{Ctrl: true}), quickpick.ModeCreateInstance, "/work/dir")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.p.Name(), got.ProfileName)
			assert.True(t, got.KeyMods.Ctrl)
			assert.Equal(t, "/work/dir", got.Cwd)

			assert.Equal(t, before, settingsBytes(t, fx))
			assert.Equal(t, regBefore, fx.reg.Len())
		})
	}
}

func TestResolveLegacyCommand(t *testing.T) {
	fx := newFixture(t, "")
	res := quickpick.NewResolver(fx.store, fx.cat, nil)
	p := profile.LegacyCommand{ProfileName: "old", Command: "bash -l"}

	for _, mode := range []quickpick.Mode{quickpick.ModeCreateInstance, quickpick.ModeSetDefault} {
		t.Run(string(mode), func(t *testing.T) {
			got, err := res.Resolve(selectionOf(p, quickpick.KeyModifiers{}), mode, "")
			require.ErrorIs(t, err, quickpick.ErrLegacyCommand)
			assert.ErrorContains(t, err, "old")
			assert.Nil(t, got)
		})
	}
}
