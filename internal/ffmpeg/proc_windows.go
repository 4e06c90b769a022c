//go:build windows

package ffmpeg

import (
	"os/exec"
	"strconv"
	"syscall"
)

// setProcessGroup creates the child in a new process group so the tree can
// be addressed as a unit on timeout.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

// killTree forcefully terminates the child and every descendant. taskkill /T
// walks the tree; there is no portable group signal on Windows.
func killTree(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	kill := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(cmd.Process.Pid))
	kill.Stdout = nil
	kill.Stderr = nil
	_ = kill.Run()
}
