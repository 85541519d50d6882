package cmd

import (
	"github.com/spf13/cobra"
	"mcyview.dev/pkg/mcyview/internal/domain"
)

// sourceCmd represents the source command.
var sourceCmd = newSourceCmd()

func newSourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "source <file>",
		Short: "Print a design file with its coverage margin",
		Long: `Print a design file with a margin per line: -N for N UNCOVERED tags, N for N
COVERED tags and ? for lines whose mutations are not tagged yet.

The file is read from the database unless --source-dir is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFor(cmd).Source(cmd.Context(), domain.SourceArgs{
				StoreArgs: storeArgs(),
				File:      args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}
