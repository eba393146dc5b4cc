//go:build windows

package detect

import (
	"os"
	"os/exec"
	"path/filepath"
)

// candidates probes the stock Windows shells plus pwsh from PATH.
func candidates() []candidate {
	windir := os.Getenv("SystemRoot")
	if windir == "" {
		windir = `C:\Windows`
	}

	cands := []candidate{
		{Name: "PowerShell", Path: filepath.Join(windir, "System32", "WindowsPowerShell", "v1.0", "powershell.exe")},
		{Name: "Command Prompt", Path: filepath.Join(windir, "System32", "cmd.exe")},
	}
	if pwsh, err := exec.LookPath("pwsh.exe"); err == nil {
		cands = append(cands, candidate{Name: "PowerShell Core", Path: pwsh})
	}
	return cands
}

// usable reports whether path exists as a regular file.
func usable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
