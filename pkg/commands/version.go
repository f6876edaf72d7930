package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionFormats = []string{"json", "yaml"}

func addVersion(topLevel *cobra.Command) {
	shortened := false
	output := "json"
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get diary version.",
		Long: `Print the version, commit and build date of this diary binary.
Builds made with "diary upgrade" report "dev" unless ldflags were set.`,
		Example: `
diary version
diary version -s
diary version -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkVersionFormat(output); err != nil {
				return err
			}
			resp := goversion.FuncWithOutput(shortened, version, commit, date, output)
			_, err := fmt.Fprint(cmd.OutOrStdout(), resp)
			return err
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return versionFormats, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func checkVersionFormat(output string) error {
	for _, f := range versionFormats {
		if output == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q, want one of %v", output, versionFormats)
}
