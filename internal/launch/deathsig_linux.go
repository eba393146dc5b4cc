//go:build linux

package launch

import "syscall"

func setDeathSignal(attr *syscall.SysProcAttr) {
	if attr == nil {
		return
	}
	attr.Pdeathsig = syscall.SIGTERM
}
