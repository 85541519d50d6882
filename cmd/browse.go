package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"mcyview.dev/pkg/mcyview/internal/domain"
)

var browseStrictFlag bool

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

const browseLongDescription = `Browse the database interactively in three linked views: by source file
and line, by mutation and by tag. Selecting a node shows its properties and
the matching line of the design file; the tag filter hides mutations and the
history keys step back and forth through earlier selections.

Without a terminal the three views are printed as trees.`

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the mutation database interactively",
		Long:  browseLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Browse(cmd.Context(), domain.BrowseArgs{
				StoreArgs: storeArgs(),
				Strict:    viper.GetBool(strictConfigKey),
			})
		},
	}

	cmd.Flags().BoolVar(&browseStrictFlag, strictFlagName, defaultStrict, "panic on navigation protocol violations")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), strictConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
