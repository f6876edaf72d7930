package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/process"
)

const installPath = "tableflip.dev/diary/cmd/diary@latest"

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade diary cli.",
		Example: `
diary upgrade
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return upgrade(context.Background(), process.NewExecRunner())
		},
	}

	topLevel.AddCommand(cmd)
}

func upgrade(ctx context.Context, r process.Runner) error {
	status, err := r.Run(ctx, "", "go", "install", installPath)
	if err != nil {
		return err
	}
	if status != 0 {
		return fmt.Errorf("go install %s exited with status %d", installPath, status)
	}
	fmt.Printf("go install %s\n", installPath)
	return nil
}
