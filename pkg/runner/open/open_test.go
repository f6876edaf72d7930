package open

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/git"
	"tableflip.dev/diary/pkg/process"
)

func init() {
	color.NoColor = true
}

func at(y int, m time.Month, d, h int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, time.Local)
	}
}

func newOpen(t *testing.T, dir string, f *process.Fake, now func() time.Time) (*Open, *bytes.Buffer) {
	t.Helper()
	editor := "vim"
	out := &bytes.Buffer{}
	return &Open{
		Config:     &config.Config{Dir: &dir, Editor: &editor},
		Runner:     f,
		Now:        now,
		IsTerminal: func() bool { return true },
		Out:        out,
	}, out
}

func TestDoCreatesDirectoryAndHeading(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "diary")
	f := process.NewFake()
	o, out := newOpen(t, dir, f, at(2024, time.March, 7, 20))

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, "202403.md")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read diary: %v", err)
	}
	if n := strings.Count(string(b), "## 2024/3/7\n"); n != 1 {
		t.Fatalf("expected heading once, found %d in %q", n, b)
	}

	calls := f.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected only the editor to run, got %v", calls)
	}
	if calls[0].String() != "vim "+path {
		t.Fatalf("unexpected editor call %q", calls[0])
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output without git, got %q", out.String())
	}
}

func TestDoBeforeCutoffOpensYesterday(t *testing.T) {
	dir := t.TempDir()
	o, _ := newOpen(t, dir, process.NewFake(), at(2024, time.April, 1, 14))

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "202403.md"))
	if err != nil {
		t.Fatalf("expected march file: %v", err)
	}
	if !strings.Contains(string(b), "## 2024/3/31\n") {
		t.Fatalf("expected yesterday's heading, got %q", b)
	}
}

func TestDoOnOverride(t *testing.T) {
	dir := t.TempDir()
	o, _ := newOpen(t, dir, process.NewFake(), at(2024, time.April, 1, 20))
	on := time.Date(2023, time.November, 1, 0, 0, 0, 0, time.Local)
	o.On = &on

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "202311.md")); err != nil {
		t.Fatalf("expected override file: %v", err)
	}
}

func TestDoTwiceKeepsOneHeading(t *testing.T) {
	dir := t.TempDir()
	o, _ := newOpen(t, dir, process.NewFake(), at(2024, time.March, 7, 20))

	for i := 0; i < 2; i++ {
		if err := o.Do(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	b, _ := os.ReadFile(filepath.Join(dir, "202403.md"))
	if n := strings.Count(string(b), "## 2024/3/7\n"); n != 1 {
		t.Fatalf("expected heading once, found %d", n)
	}
}

func gitDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func TestDoCommits(t *testing.T) {
	dir := gitDir(t)
	f := process.NewFake()
	o, out := newOpen(t, dir, f, at(2024, time.March, 7, 20))

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, "202403.md")
	want := []string{
		"vim " + path,
		"git add " + path,
		"git commit -m auto commit for 2024/3/7 diary",
	}
	calls := f.Calls()
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), calls)
	}
	for i, c := range calls {
		if c.String() != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], c)
		}
		if c.Name == "git" && c.Dir != dir {
			t.Fatalf("git must run in %q, ran in %q", dir, c.Dir)
		}
	}
	if got := out.String(); got != "automatically committed\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDoNoCommit(t *testing.T) {
	dir := gitDir(t)
	f := process.NewFake()
	o, _ := newOpen(t, dir, f, at(2024, time.March, 7, 20))
	o.NoCommit = true

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(f.Calls()); n != 1 {
		t.Fatalf("expected only the editor, got %d calls", n)
	}
}

func TestDoEditorFailureSkipsGit(t *testing.T) {
	dir := gitDir(t)
	f := process.NewFake().Exit("vim", 1)
	o, out := newOpen(t, dir, f, at(2024, time.March, 7, 20))

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("editor failure must not be fatal: %v", err)
	}
	if n := len(f.Calls()); n != 1 {
		t.Fatalf("expected git to be skipped, got %v", f.Calls())
	}
	if got := out.String(); got != "editor exited with non-ok status code\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "202403.md")); err != nil {
		t.Fatalf("template should already be written: %v", err)
	}
}

func TestDoEditorSpawnFailure(t *testing.T) {
	dir := t.TempDir()
	f := process.NewFake().Fail("vim", errors.New("executable file not found"))
	o, _ := newOpen(t, dir, f, at(2024, time.March, 7, 20))

	if err := o.Do(context.Background()); err == nil {
		t.Fatalf("expected fatal error when editor cannot start")
	}
}

func TestDoCommitFailureIsFatal(t *testing.T) {
	dir := gitDir(t)
	f := process.NewFake().Exit("git commit", 1)
	o, out := newOpen(t, dir, f, at(2024, time.March, 7, 20))

	err := o.Do(context.Background())
	if !errors.Is(err, git.ErrGitOperationFailed) {
		t.Fatalf("expected git failure, got %v", err)
	}
	if strings.Contains(out.String(), "automatically committed") {
		t.Fatalf("must not report success on failure")
	}
}

func TestDoNoHome(t *testing.T) {
	o := &Open{
		Config: &config.Config{HomeDir: func() (string, error) {
			return "", errors.New("no home")
		}},
		Runner:     process.NewFake(),
		IsTerminal: func() bool { return true },
		Out:        &bytes.Buffer{},
	}
	if err := o.Do(context.Background()); !errors.Is(err, config.ErrNoHome) {
		t.Fatalf("expected ErrNoHome, got %v", err)
	}
}

func TestDoWarnsWithoutTerminal(t *testing.T) {
	dir := t.TempDir()
	o, out := newOpen(t, dir, process.NewFake(), at(2024, time.March, 7, 20))
	o.IsTerminal = func() bool { return false }
	errOut := &bytes.Buffer{}
	o.Err = errOut

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut.String(), "not a terminal") {
		t.Fatalf("expected terminal warning on stderr, got %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("warning must not reach stdout, got %q", out.String())
	}
}

func TestDoSkippedMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2022, time.September, 11, 20, 0, 0, 0, loc) }
	o, _ := newOpen(t, dir, process.NewFake(), now)

	if err := o.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "202209.md"))
	if err != nil {
		t.Fatalf("read diary: %v", err)
	}
	if !strings.Contains(string(b), "## 2022/9/11\n") {
		t.Fatalf("expected today's heading, got %q", b)
	}
}
