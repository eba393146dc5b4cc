package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/termpick/internal/quickpick"
)

// huhPrompt adapts a huh input form to quickpick.NamePrompt.
type huhPrompt struct{}

func (huhPrompt) Ask(ctx context.Context, req quickpick.NameRequest) (string, bool, error) {
	name := req.Initial
	input := huh.NewInput().
		Title(req.Title).
		Value(&name)
	if req.Validate != nil {
		input = input.Validate(req.Validate)
	}

	if err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return name, true, nil
}
