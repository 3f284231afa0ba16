package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drillbook-dev/drillbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "drillbook",
		Short:   "Generate and grade accounting-cycle practice sets",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newGradeCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
