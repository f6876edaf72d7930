// Package git commits diary changes when the diary directory is a repository.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/diary/pkg/process"
)

// ErrGitOperationFailed indicates a git command exited non-zero.
var ErrGitOperationFailed = errors.New("git operation failed")

// CommandError describes a failed git invocation.
type CommandError struct {
	Args   []string
	Status int
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("failed to run `git %s`", strings.Join(e.Args, " "))
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: exit status %d", msg, e.Status)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsRepo reports whether dir has a .git entry directly under it.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Committer stages and commits files inside Dir.
type Committer struct {
	Runner process.Runner
	Dir    string
}

// Commit runs `git add path` followed by `git commit -m message`. Nothing is
// retried; "nothing to commit" fails like any other non-zero exit.
func (c *Committer) Commit(ctx context.Context, path, message string) error {
	if err := c.git(ctx, "add", path); err != nil {
		return err
	}
	return c.git(ctx, "commit", "-m", message)
}

func (c *Committer) git(ctx context.Context, args ...string) error {
	status, err := c.Runner.Run(ctx, c.Dir, "git", args...)
	if err != nil {
		return &CommandError{Args: args, Status: status, Err: err}
	}
	if status != 0 {
		return &CommandError{Args: args, Status: status, Err: ErrGitOperationFailed}
	}
	return nil
}
