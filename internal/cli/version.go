package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/version"
)

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the farmhand version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "farmhand", version.String())
		},
	}
}
