package ffmpeg

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrTimedOut is the Err carried by a Result whose invocation exceeded the
// configured timeout.
var ErrTimedOut = errors.New("invocation timed out")

// Result holds the outcome of a single bounded invocation.
type Result struct {
	Stderr   string
	TimedOut bool
	Err      error
}

// OK reports whether the process ran to completion with exit status 0.
func (r Result) OK() bool {
	return r.Err == nil && !r.TimedOut
}

// Runner executes external commands under a hard wall-clock timeout,
// uniform across all invocations. A batch cancellation never interrupts an
// in-flight invocation; it always runs to its own timeout or completion.
type Runner struct {
	Timeout time.Duration
}

// Run starts the command described by args (args[0] is the binary path) in
// its own process group and waits for it. If the timeout elapses first, the
// entire process tree is killed and the child reaped before returning, so
// no process ever outlives the call. Errors constructing or communicating
// with the process are reported as non-timeout failures, never propagated
// as panics.
func (r *Runner) Run(args []string) Result {
	if len(args) == 0 {
		return Result{Err: errors.New("empty command")}
	}

	cmd := exec.Command(args[0], args[1:]...)
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return Result{Err: fmt.Errorf("start %s: %w", args[0], err)}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(r.Timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return Result{Stderr: stderrBuf.String(), Err: err}
	case <-timer.C:
		killTree(cmd)
		<-done // reap; Wait must complete before the buffers are read
		return Result{Stderr: stderrBuf.String(), TimedOut: true, Err: ErrTimedOut}
	}
}
