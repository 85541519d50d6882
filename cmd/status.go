package cmd

import (
	"github.com/spf13/cobra"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the mutation database",
		Long: `Print the number of mutations, the test results per test and outcome, the
mutation count per tag and the coverage score of the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Status(cmd.Context(), storeArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
