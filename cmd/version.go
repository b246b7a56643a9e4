package cmd

import (
	"fmt"

	"github.com/abhisek/pulse/internal/survey"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pulse", version)
		fmt.Fprintln(cmd.OutOrStdout(), "survey format", survey.SupportedMajor)
	},
}
