package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/lexibot/pkg/log"
	"github.com/sandevgo/lexibot/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Lexi intake services",
	Long:  `Initializes and starts the configured delivery shells (HTTP API, terminal chat) with the completion and calendar providers behind them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting lexi")

		services := NewServices(ctx)

		// Registered last so the log ring buffer drains only after every
		// other service has shut down.
		services = append(services, srv.NewCleanup(func() error {
			logger.Info().Msg("lexi has been shut down gracefully")
			flushLog()
			return nil
		}))

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
