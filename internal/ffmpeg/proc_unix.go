//go:build !windows

package ffmpeg

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the child in its own process group so a timeout
// kill reaches any grandchildren the transcoder spawns.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killTree forcefully terminates the child's entire process group, falling
// back to killing the direct child if the group lookup fails.
func killTree(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
		_ = syscall.Kill(-pgid, syscall.SIGKILL)
		return
	}
	_ = cmd.Process.Kill()
}
