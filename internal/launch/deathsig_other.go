//go:build !linux && !windows

package launch

import "syscall"

func setDeathSignal(*syscall.SysProcAttr) {}
