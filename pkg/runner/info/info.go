package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/git"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/runner/open"
)

// Info reports where the diary lives and what would be opened.
type Info struct {
	Config *config.Config
	Output string
	Out    io.Writer
}

// Details is the machine-readable form of the report.
type Details struct {
	ConfigPath string `json:"configPath,omitempty"`
	Source     string `json:"source"`
	Dir        string `json:"dir"`
	DirExists  bool   `json:"dirExists"`
	Editor     string `json:"editor"`
	File       string `json:"file"`
	Heading    string `json:"heading"`
	Git        bool   `json:"git"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	o := open.Open{Config: n.Config}
	e, err := o.Resolve()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(e.Dir)
	d := Details{
		ConfigPath: n.Config.File,
		Source:     n.Config.Source(),
		Dir:        e.Dir,
		DirExists:  statErr == nil,
		Editor:     n.Config.EditorCommand(),
		File:       e.Path,
		Heading:    e.Date.Heading(),
		Git:        git.IsRepo(e.Dir),
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}

	switch n.Output {
	case "json":
		b, err := json.Marshal(d)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))

	default:
		if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
			_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH found on env, using", override)
		}
		pp := printers.PrettyPrint{Out: out}
		pp.Title("Diary")
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("Config:", orNone(d.ConfigPath))
		tbl.AddRow("Source:", d.Source)
		tbl.AddRow("Directory:", d.Dir+missing(d.DirExists))
		tbl.AddRow("Editor:", d.Editor)
		tbl.AddRow("File:", d.File)
		tbl.AddRow("Heading:", d.Heading)
		tbl.AddRow("Auto-commit:", yesNo(d.Git))
		_, _ = fmt.Fprintln(out, tbl)
	}

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func missing(exists bool) string {
	if exists {
		return ""
	}
	return " (will be created)"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
