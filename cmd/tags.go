package cmd

import (
	"github.com/spf13/cobra"
)

// tagsCmd represents the tags command.
var tagsCmd = newTagsCmd()

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with their mutation counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Tags(cmd.Context(), storeArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
