package cli

import (
	"fmt"

	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

// VersionCmd prints the version of the binary
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if Version == "" {
				fmt.Fprintln(cmd.OutOrStdout(), term.Yellow("Version information not available"))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalogindex version %s\n", Version)
			return nil
		},
	}
}
