// Package cmd provides the root command and CLI setup for mcyview.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"mcyview.dev/pkg/mcyview/internal/adapter"
	"mcyview.dev/pkg/mcyview/internal/controller"
	"mcyview.dev/pkg/mcyview/internal/domain"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var storeOpener adapter.StoreOpener

// workflow, when set, replaces the workflow built for each command.
var workflow domain.Workflow

var databaseFlag string
var sourceDirFlag string
var formatFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalSourceFSAdapter()
	storeOpener = adapter.NewStoreOpener()
}

const rootLongDescription = `mcyview inspects the database of a mutation cover (mcy) run.

It answers which design lines are covered by which mutations, which tags the
logic script assigned and which tests killed them. The database location is
either a project directory containing database/db.sqlite3 or the sqlite file
itself.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "mcyview",
		Short:        "Mutation cover database viewer",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with its persistent flags, without
// subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&databaseFlag, databaseFlagName, "d", viper.GetString(databaseConfigKey),
		"project directory or mutation database file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(databaseFlagName), databaseConfigKey)

	cmd.PersistentFlags().StringVar(&sourceDirFlag, sourceDirFlagName, viper.GetString(sourceDirConfigKey),
		"read design files from this directory instead of the database")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceDirFlagName), sourceDirConfigKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey),
		"report format: table or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey),
		"log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// workflowFor returns the workflow a command runs against. Reports are
// written to the command output in the configured format.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	tty := controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout)
	ui := controller.NewUI(cmd, tty, viper.GetString(formatConfigKey))

	return domain.NewWorkflow(fsAdapter, storeOpener, ui)
}

func storeArgs() domain.StoreArgs {
	return domain.StoreArgs{
		Database:  m.Path(viper.GetString(databaseConfigKey)),
		SourceDir: m.Path(viper.GetString(sourceDirConfigKey)),
	}
}

// shutdownSignals cancel the context of the running command.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
