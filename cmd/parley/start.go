package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fernvale/parley/pkg/log"
	"github.com/fernvale/parley/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Parley bot",
	Long:  `Initializes storage, the OpenAI gateway and the Telegram transport, then runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting parley")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("parley has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
