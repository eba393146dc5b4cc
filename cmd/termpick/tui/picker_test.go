package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/termpick/internal/quickpick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendKey(m tea.Model, key string) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated
}

func pickerItems() []quickpick.Item {
	return []quickpick.Item{
		{Label: "profiles", Separator: true},
		{Label: "❯ zsh", Description: "/bin/zsh", ProfileName: "zsh", CanConfigure: true},
		{Label: "$ bash", Description: "/bin/bash", ProfileName: "bash", CanConfigure: true},
		{Label: "contributed", Separator: true},
		{Label: "◆ Ubuntu (WSL)", Description: "termpick.wsl", ProfileName: "Ubuntu (WSL)"},
	}
}

func TestPickerModel_InitialCursorSkipsSeparator(t *testing.T) {
	m := NewPickerModel("Select", pickerItems())
	assert.Equal(t, 1, m.cursor)
}

func TestPickerModel_Navigation(t *testing.T) {
	var model tea.Model = NewPickerModel("Select", pickerItems())

	model = sendKey(model, "j")
	assert.Equal(t, 2, model.(PickerModel).cursor)

	// Separator rows are skipped.
	model = sendKey(model, "j")
	assert.Equal(t, 4, model.(PickerModel).cursor)

	// No wrap at the bottom.
	model = sendKey(model, "j")
	assert.Equal(t, 4, model.(PickerModel).cursor)

	model = sendKey(model, "k")
	assert.Equal(t, 2, model.(PickerModel).cursor)
}

func TestPickerModel_NoWrapAtTop(t *testing.T) {
	var model tea.Model = NewPickerModel("Select", pickerItems())
	model = sendKey(model, "k")
	assert.Equal(t, 1, model.(PickerModel).cursor)
}

func TestPickerModel_EnterSelects(t *testing.T) {
	model, cmd := NewPickerModel("Select", pickerItems()).Update(tea.KeyMsg{Type: tea.KeyEnter})
	p := model.(PickerModel)

	require.NotNil(t, cmd)
	require.NotNil(t, p.Selection)
	assert.Equal(t, "zsh", p.Selection.Item.ProfileName)
	assert.False(t, p.Selection.KeyMods.Alt)
	assert.False(t, p.Selection.Configure)
}

func TestPickerModel_AltEnterSetsModifier(t *testing.T) {
	model, cmd := NewPickerModel("Select", pickerItems()).Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	p := model.(PickerModel)

	require.NotNil(t, cmd)
	require.NotNil(t, p.Selection)
	assert.True(t, p.Selection.KeyMods.Alt)
}

func TestPickerModel_Dismiss(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model, cmd := NewPickerModel("Select", pickerItems()).Update(tc.msg)
			p := model.(PickerModel)

			require.NotNil(t, cmd)
			assert.Nil(t, p.Selection)
			assert.Empty(t, p.View())
		})
	}
}

func TestPickerModel_ConfigureKey(t *testing.T) {
	t.Run("fires on a configurable item", func(t *testing.T) {
		model, cmd := NewPickerModel("Select", pickerItems()).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		p := model.(PickerModel)

		require.NotNil(t, cmd)
		require.NotNil(t, p.Selection)
		assert.True(t, p.Selection.Configure)
		assert.Equal(t, "zsh", p.Selection.Item.ProfileName)
	})

	t.Run("ignored on contributed items", func(t *testing.T) {
		var model tea.Model = NewPickerModel("Select", pickerItems())
		model = sendKey(sendKey(model, "j"), "j") // cursor on Ubuntu

		updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		p := updated.(PickerModel)

		assert.Nil(t, cmd)
		assert.Nil(t, p.Selection)
	})
}

func TestPickerModel_ViewLayout(t *testing.T) {
	m := NewPickerModel("Select the profile to create", pickerItems())
	view := m.View()

	assert.Contains(t, view, "Select the profile to create")
	assert.Contains(t, view, "── profiles ──")
	assert.Contains(t, view, "── contributed ──")
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "/bin/zsh")
	assert.Contains(t, view, "c configure")

	// The configure hint disappears on rows without the action.
	var model tea.Model = m
	model = sendKey(sendKey(model, "j"), "j")
	view = model.(PickerModel).View()
	assert.NotContains(t, view, "c configure")
}

func TestPickerModel_EmptyList(t *testing.T) {
	m := NewPickerModel("Select", nil)
	assert.Contains(t, m.View(), "(no profiles found)")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Nil(t, model.(PickerModel).Selection)
}

func TestPickerModel_Scrolling(t *testing.T) {
	items := []quickpick.Item{{Label: "profiles", Separator: true}}
	for i := 0; i < 30; i++ {
		name := fmt.Sprintf("sh%02d", i)
		items = append(items, quickpick.Item{Label: name, ProfileName: name})
	}

	var model tea.Model = NewPickerModel("Select", items)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	view := model.(PickerModel).View()
	assert.Contains(t, view, "↓ more")
	assert.NotContains(t, view, "↑ more")

	for i := 0; i < 29; i++ {
		model = sendKey(model, "j")
	}
	view = model.(PickerModel).View()
	assert.Contains(t, view, "↑ more")
	assert.NotContains(t, view, "↓ more")
	assert.Contains(t, view, "sh29")
}
