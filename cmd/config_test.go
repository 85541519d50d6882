package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mcyview.dev/pkg/mcyview/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "mcyview", configBaseName)
	assert.Equal(t, "mcyview.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "database", databaseConfigKey)
	assert.Equal(t, "source_dir", sourceDirConfigKey)
	assert.Equal(t, "report.format", formatConfigKey)
	assert.Equal(t, "report.parallel", parallelConfigKey)
	assert.Equal(t, "browse.strict", strictConfigKey)
	assert.Equal(t, "MCYVIEW", envPrefix)
	assert.Equal(t, ".mcyview.log", defaultLogFilename)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, currentConfigVersion, viper.GetInt(configVersionKey))
	assert.Equal(t, defaultParallel, viper.GetInt(parallelConfigKey))
	assert.Equal(t, defaultStrict, viper.GetBool(strictConfigKey))
	assert.Equal(t, defaultLogMaxSize, viper.GetInt(logMaxSizeKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", " INFO ", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "mcyview.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))

	configureLogger(logPath, false)
	assert.False(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelInfo))
}

// newTestRootCmd returns a fresh root command. Flags it binds to viper keys
// are released when the test ends.
func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()
	t.Cleanup(restoreConfig)

	return newRootCmd()
}

// restoreConfig resets viper to its defaults and binds the keys back to the
// flags of the package commands.
func restoreConfig() {
	viper.Reset()
	setupConfig()

	persistent := rootCmd.PersistentFlags()
	bindFlagToConfig(persistent.Lookup(databaseFlagName), databaseConfigKey)
	bindFlagToConfig(persistent.Lookup(sourceDirFlagName), sourceDirConfigKey)
	bindFlagToConfig(persistent.Lookup(formatFlagName), formatConfigKey)
	bindFlagToConfig(persistent.Lookup(verboseFlagName), logVerboseKey)
	bindFlagToConfig(coverageCmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
	bindFlagToConfig(browseCmd.Flags().Lookup(strictFlagName), strictConfigKey)
}

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		want    int
	}{
		{"missing file", "", false, defaultParallel},
		{"valid file", "report:\n  parallel: 9\n", false, 9},
		{"malformed file", "report: [unterminated\n", true, defaultParallel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Cleanup(restoreConfig)

			if tt.content != "" {
				require.NoError(t, os.WriteFile(configFileName, []byte(tt.content), 0o600))
			}

			err := readConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, viper.GetInt(parallelConfigKey))
		})
	}
}

func TestCommandFlagsDoNotLeakIntoConfig(t *testing.T) {
	t.Run("set flags", func(t *testing.T) {
		cmd := newTestRootCmd(t)
		cmd.AddCommand(newCoverageCmd(), newBrowseCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		original := workflow
		workflow = nopWorkflow{}
		t.Cleanup(func() { workflow = original })

		cmd.SetArgs([]string{"coverage", "-p", "2", "-d", "elsewhere", "-f", "yaml"})
		require.NoError(t, cmd.Execute())
		require.Equal(t, 2, viper.GetInt(parallelConfigKey))
	})

	assert.Equal(t, defaultParallel, viper.GetInt(parallelConfigKey))
	assert.Equal(t, defaultDatabase, viper.GetString(databaseConfigKey))
	assert.Equal(t, defaultFormat, viper.GetString(formatConfigKey))
	assert.Equal(t, defaultStrict, viper.GetBool(strictConfigKey))
}

type nopWorkflow struct{ domain.Workflow }

func (nopWorkflow) Coverage(context.Context, domain.CoverageArgs) error { return nil }
