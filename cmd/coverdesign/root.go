package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/viant/coverdesign/internal/config"
	"github.com/viant/coverdesign/internal/logging"
	"github.com/viant/coverdesign/runstore"
)

// env is resolved once per command invocation.
type env struct {
	v      *viper.Viper
	logger *zap.Logger
	out    io.Writer
	format string
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coverdesign",
		Short:         "Greedy covering designs over sampled universes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddGlobalFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newSampleCommand(),
		newGenerateCommand(),
		newListCommand(),
		newShowCommand(),
		newDeleteCommand(),
		newCoveringCommand(),
		newSimilarCommand(),
		newVerifyCommand(),
	)
	return cmd
}

// setup binds the command flags and builds the logger.
func setup(cmd *cobra.Command) (*env, error) {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(v.GetString(config.LogLevelKey), v.GetString(config.LogFormatKey))
	if err != nil {
		return nil, err
	}
	return &env{
		v:      v,
		logger: logger,
		out:    cmd.OutOrStdout(),
		format: v.GetString(config.OutputKey),
	}, nil
}

func (e *env) store() (*runstore.SQLiteStore, error) {
	return runstore.NewSQLiteStore(e.v.GetString(config.DBDirKey), runstore.WithLogger(e.logger))
}

func (e *env) close() { _ = e.logger.Sync() }
