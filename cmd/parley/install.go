package main

import (
	"github.com/spf13/cobra"

	"github.com/fernvale/parley/internal/config"
	"github.com/fernvale/parley/internal/service/installer"
	"github.com/fernvale/parley/pkg/log"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Run the interactive setup wizard",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		// run wizard (includes save step)
		if _, err := installer.RunWizard(); err != nil {
			return err
		}

		logger.Info().Msgf("initialized runtime directory at: %s", config.GetRuntimePath())
		logger.Info().Msg("Installation complete! You can now run 'parley start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
