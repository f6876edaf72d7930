package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/config"
	"tableflip.dev/diary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the diary is stored and what would be opened.",
		Example: `
diary info
diary info --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{Config: cfg}
			if output.JSON {
				s.Output = "json"
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
