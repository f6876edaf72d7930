package diary

import (
	"fmt"
	"os"
	"path/filepath"
)

// Entry is the resolved location of one day's diary section.
type Entry struct {
	Dir  string
	Path string
	Date Date
}

// Resolve builds the monthly file path for date inside dir.
func Resolve(dir string, date Date) Entry {
	return Entry{
		Dir:  dir,
		Path: filepath.Join(dir, date.FileName()),
		Date: date,
	}
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create diary directory %s: %w", dir, err)
	}
	return nil
}
