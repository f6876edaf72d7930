package open

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/editor"
	"tableflip.dev/diary/pkg/git"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/process"
	"tableflip.dev/diary/pkg/timeutil"
)

// Open resolves the diary entry, writes its heading, opens the editor and
// commits the result when the diary directory is a git repository.
type Open struct {
	Config *config.Config
	Runner process.Runner

	// On overrides the date picked from the current time.
	On       *time.Time
	NoCommit bool

	Now        func() time.Time
	IsTerminal func() bool
	Out        io.Writer
	// Err receives warnings. Defaults to color.Error.
	Err io.Writer
}

// Resolve works out the target entry without touching the filesystem.
func (o *Open) Resolve() (diary.Entry, error) {
	dir, err := o.Config.DiaryDir()
	if err != nil {
		return diary.Entry{}, err
	}
	return diary.Resolve(dir, o.date()), nil
}

func (o *Open) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: o.Out}

	e, err := o.Resolve()
	if err != nil {
		return err
	}
	if err := diary.EnsureDir(e.Dir); err != nil {
		return err
	}

	if _, err := diary.EnsureHeading(e.Path, e.Date); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	if !o.terminal() {
		warn := printers.PrettyPrint{Out: o.errOut()}
		warn.Warning("stdin is not a terminal, the editor may not work as expected")
	}

	r := o.runner()
	ok, err := editor.Launch(ctx, r, o.Config.EditorCommand(), e.Path)
	if err != nil {
		return err
	}
	if !ok {
		pp.Notice("editor exited with non-ok status code")
		return nil
	}

	if o.NoCommit || !git.IsRepo(e.Dir) {
		return nil
	}

	c := git.Committer{Runner: r, Dir: e.Dir}
	if err := c.Commit(ctx, e.Path, e.Date.CommitMessage()); err != nil {
		return err
	}
	pp.Success("automatically committed")
	return nil
}

func (o *Open) date() diary.Date {
	if o.On != nil {
		return diary.DateOf(*o.On)
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return diary.DateOf(timeutil.EntryDate(now()))
}

func (o *Open) runner() process.Runner {
	if o.Runner == nil {
		return process.NewExecRunner()
	}
	return o.Runner
}

func (o *Open) errOut() io.Writer {
	if o.Err == nil {
		return color.Error
	}
	return o.Err
}

func (o *Open) terminal() bool {
	if o.IsTerminal != nil {
		return o.IsTerminal()
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
