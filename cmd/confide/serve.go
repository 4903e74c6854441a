package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/unowned-ai/confide/pkg/httpapi"
)

var httpAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the confide HTTP API",
	Long: `Serves the reply and daily quote endpoints:

  POST /api/ai-response   {content, mood, style} -> {response}
  GET  /api/daily-quote   ?date=YYYY-MM-DD
  GET  /metrics           Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		addr := cfg.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr = httpAddrFlag
		}

		svc := newCompletion(cfg, logger)
		if svc == nil {
			logger.Warn().Msg("CONFIDE_OPENAI_API_KEY is not set, /api/ai-response will fail")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := httpapi.New(svc, newQuoteSource(cfg), httpapi.WithLogger(logger))
		return srv.ListenAndServe(ctx, addr)
	},
}

func initServeCmd() {
	serveCmd.Flags().StringVar(&httpAddrFlag, "addr", "", "Listen address (default: CONFIDE_HTTP_ADDR or :8080)")
}
