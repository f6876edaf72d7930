// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutDiary    = "2006/1/2"
	layoutISOShort = "1/2"
)

// OnOptions picks the diary day explicitly instead of from the clock.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Open the entry for a date, example: --on="2020-2-28", --on="2020/2/28" or --on="2/28".`)
}

// GetOn returns the requested date, or nil when --on was not given.
func (o *OnOptions) GetOn() (*time.Time, error) {
	return o.getOn(time.Now())
}

func (o *OnOptions) getOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	// Parsed in UTC so the calendar day survives zones that skip midnight.
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.UTC)
	if err == nil {
		return &t, nil
	}
	if t, err = time.ParseInLocation(layoutDiary, o.OnString, time.UTC); err == nil {
		return &t, nil
	}
	// Let the year be the same.
	md, err := time.ParseInLocation(layoutISOShort, o.OnString, time.UTC)
	if err != nil {
		return nil, err
	}
	t = time.Date(now.Year(), md.Month(), md.Day(), 0, 0, 0, 0, time.UTC)
	if t.Month() != md.Month() || t.Day() != md.Day() {
		return nil, fmt.Errorf("%q is not a day in %d", o.OnString, now.Year())
	}
	return &t, nil
}

// CommitOptions controls the git auto-commit.
type CommitOptions struct {
	NoCommit bool
}

func AddCommitArgs(cmd *cobra.Command, o *CommitOptions) {
	cmd.Flags().BoolVar(&o.NoCommit, "no-commit", false,
		"Skip the git auto-commit after the editor closes.")
}
