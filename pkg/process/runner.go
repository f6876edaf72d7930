// Package process runs the editor and git as child processes.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner starts a command and waits for it to exit.
//
// The returned error is only set when the command could not be started or
// waited on. A command that ran and failed reports a non-zero status.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (status int, err error)
}

// ExecRunner runs commands with os/exec, attached to the current terminal.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner using the process' standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to launch %s: %w", name, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// -1 when killed by a signal.
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("couldn't wait for %s: %w", name, err)
	}
	return 0, nil
}
