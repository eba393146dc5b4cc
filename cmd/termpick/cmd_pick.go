package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/termpick/internal/launch"
	"github.com/ruminaider/termpick/internal/quickpick"
	"github.com/spf13/cobra"
)

var pickCwd string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a profile and launch it",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fall back to the listing when stdin is not a terminal.
		if !term.IsTerminal(os.Stdin.Fd()) {
			return listCmd.RunE(cmd, args)
		}

		app, err := newApp(pickCwd)
		if err != nil {
			return err
		}
		defer app.Close()

		w := app.workflow(tuiPicker{}, huhPrompt{})
		res, err := w.ShowAndGetResult(cmd.Context(), quickpick.ModeCreateInstance, app.cwd)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}

		err = launch.Run(cmd.Context(), res, app.reg, app.log)

		// Carry the shell's exit code through.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	},
}

func init() {
	pickCmd.Flags().StringVar(&pickCwd, "cwd", "", "Working directory for the launched shell")
}
