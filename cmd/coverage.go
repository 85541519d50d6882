package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"mcyview.dev/pkg/mcyview/internal/domain"
)

var coverageParallelFlag uint

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

const coverageLongDescription = `Print the per-line coverage of design files: how many COVERED and
UNCOVERED tags the mutations of each line carry. Lines with an UNCOVERED
mutation are marked with "!", and source locations whose mutations are all
untagged are listed as yet to cover.

Without arguments every file referenced by the database is reported.`

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage [files...]",
		Short: "Show per-line coverage of design files",
		Long:  coverageLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFor(cmd).Coverage(cmd.Context(), domain.CoverageArgs{
				StoreArgs: storeArgs(),
				Files:     args,
				Parallel:  viper.GetUint(parallelConfigKey),
			})
		},
	}

	configureCoverageFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}

func configureCoverageFlags(cmd *cobra.Command) {
	cmd.Flags().UintVarP(&coverageParallelFlag, parallelFlagName, "p", defaultParallel, "number of files aggregated in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
