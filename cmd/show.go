package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"mcyview.dev/pkg/mcyview/internal/domain"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the properties of a mutation or a source location",
	}

	cmd.AddCommand(newShowMutationCmd(), newShowSourceCmd())

	return cmd
}

func newShowMutationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutation <id>",
		Short: "Show the options, tags and test results of a mutation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := m.ParseMutationID(args[0])
			if err != nil {
				return fmt.Errorf("invalid mutation id %q: %w", args[0], err)
			}

			return workflowFor(cmd).Show(cmd.Context(), domain.ShowArgs{
				StoreArgs:   storeArgs(),
				Mutation:    id,
				HasMutation: true,
			})
		},
	}
}

func newShowSourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "source <file:line>",
		Short:   "Show a source location",
		Example: "  mcyview show source rtl/alu.v:42",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := m.SrcTag(args[0])
			if _, err := m.ParseSrcTag(src); err != nil {
				return err
			}

			return workflowFor(cmd).Show(cmd.Context(), domain.ShowArgs{
				StoreArgs: storeArgs(),
				Source:    src,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
