package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/termpick/internal/quickpick"
	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Choose the default profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("choosing a default profile requires an interactive terminal")
		}

		app, err := newApp("")
		if err != nil {
			return err
		}
		defer app.Close()

		w := app.workflow(tuiPicker{}, huhPrompt{})
		if _, err := w.ShowAndGetResult(cmd.Context(), quickpick.ModeSetDefault, app.cwd); err != nil {
			return err
		}

		if name := app.cat.ConfiguredDefaultProfileName(); name != "" {
			fmt.Printf("Default profile: %s\n", name)
		}
		return nil
	},
}
