package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quotient/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quotient version %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
