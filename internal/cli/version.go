package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/artifactvault/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "artifactvault %s (commit %s, built %s)\n",
			build.Version, build.Commit, build.BuildDate)
	},
}

func init() {
	versionCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(versionCmd)
}
