// Package editor opens a file in the user's editor and waits for it to close.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/diary/pkg/process"
)

// ErrNoEditor is returned for an empty editor command.
var ErrNoEditor = errors.New("no editor configured")

// Split breaks an editor command line such as "code -w" into the program and
// its leading arguments. No shell is involved and quotes are not interpreted,
// so a program path containing spaces only works when command is exactly that
// path of an existing file, e.g. "/opt/My Editor/bin/ed". Such a path cannot
// be combined with extra arguments.
func Split(command string) (string, []string, error) {
	if trimmed := strings.TrimSpace(command); strings.ContainsAny(trimmed, " \t") {
		if info, err := os.Stat(trimmed); err == nil && !info.IsDir() {
			return trimmed, []string{}, nil
		}
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, ErrNoEditor
	}
	return fields[0], fields[1:], nil
}

// Launch runs command with path as its last argument and blocks until it
// exits. It reports whether the editor exited successfully; err is only set
// when the editor could not be launched.
func Launch(ctx context.Context, r process.Runner, command, path string) (bool, error) {
	name, args, err := Split(command)
	if err != nil {
		return false, err
	}
	status, err := r.Run(ctx, "", name, append(args, path)...)
	if err != nil {
		return false, fmt.Errorf("failed to launch editor: %w", err)
	}
	return status == 0, nil
}
