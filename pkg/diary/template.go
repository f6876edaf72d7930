package diary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// EnsureHeading makes sure the file at path contains the heading for date,
// creating the file if needed. Existing content is never rewritten; a missing
// heading is appended after two blank lines. It reports whether it wrote one.
func EnsureHeading(path string, date Date) (written bool, err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	heading := date.Heading()
	found, err := hasLine(f, heading)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if found {
		return false, nil
	}

	if _, err := fmt.Fprintf(f, "\n\n%s\n", heading); err != nil {
		return false, fmt.Errorf("failed to write template to %s: %w", path, err)
	}
	return true, nil
}

// hasLine scans r line by line and stops at the first line equal to want.
func hasLine(r io.Reader, want string) (bool, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if line == want {
				return true, nil
			}
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}
