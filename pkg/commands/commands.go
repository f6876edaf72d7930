package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/runner/open"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	on := &options.OnOptions{}
	co := &options.CommitOptions{}

	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("Open the diary entry for today in your editor."),
		Long: base.Wrap80("Open the monthly diary file in $DIARY_EDITOR (or $EDITOR, or vim), " +
			"adding a heading for the day if it is missing. Before 15:00 the entry for " +
			"yesterday is opened. When the diary directory is a git repository the file " +
			"is committed after the editor exits successfully.") + `

Environment:
  DIARY_DIR          diary directory (default ~/diary)
  DIARY_EDITOR       editor command, checked before EDITOR
  EDITOR             fallback editor command
  DIARY_CONFIG_PATH  directory holding an optional .diary.yaml
`,
		Example: `
diary
diary --on=2020-2-28
diary --no-commit
`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			o := open.Open{
				Config:   cfg,
				On:       date,
				NoCommit: co.NoCommit,
			}
			return o.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddCommitArgs(cmd, co)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
