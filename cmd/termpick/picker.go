package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/termpick/cmd/termpick/tui"
	"github.com/ruminaider/termpick/internal/quickpick"
)

// tuiPicker runs the Bubble Tea picker and adapts it to quickpick.Picker.
type tuiPicker struct{}

func (tuiPicker) Pick(ctx context.Context, req quickpick.PickRequest) (*quickpick.Selection, error) {
	model := tui.NewPickerModel(req.Placeholder, req.Items)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	return final.(tui.PickerModel).Selection, nil
}
