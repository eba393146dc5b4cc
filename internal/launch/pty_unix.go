//go:build !windows

package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/creack/pty"
	"github.com/ruminaider/termpick/internal/logging"
)

func run(ctx context.Context, spec *Spec, log *logging.Logger) error {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Cwd
	cmd.Env = append(os.Environ(), "TERMPICK_SESSION_ID="+spec.SessionID.String())
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
	setDeathSignal(cmd.SysProcAttr)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("starting %s: %w", spec.Path, err)
	}
	defer ptmx.Close()

	// Mirror the controlling terminal's size into the pty, now and on
	// every SIGWINCH.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				log.Warn().Err(err).Msg("resizing pty")
			}
		}
	}()
	winch <- syscall.SIGWINCH

	prev, err := term.MakeRaw(os.Stdin.Fd())
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(os.Stdin.Fd(), prev) }()

	go func() {
		_, _ = io.Copy(ptmx, os.Stdin)
	}()
	// Reading the pty master returns EIO once the shell exits.
	_, _ = io.Copy(os.Stdout, ptmx)

	return cmd.Wait()
}
