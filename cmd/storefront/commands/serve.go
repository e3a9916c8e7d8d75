package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"storefront/internal/catalog"
	"storefront/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing pages over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Open(cfg.CatalogFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logrus.WithField("addr", cfg.Addr()).Info("Starting storefront")
			return server.New(cfg, store).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	cmd.Flags().BoolVar(&cfg.LiveReload, "live-reload", cfg.LiveReload, "reload browsers when the catalog file changes")
	cmd.Flags().BoolVar(&cfg.TrackOutbound, "track-outbound", cfg.TrackOutbound, "route buy and contact links through /go/{id}")
	cmd.Flags().IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "requests per window per IP (0 disables)")
	cmd.Flags().DurationVar(&cfg.RateWindow, "rate-window", cfg.RateWindow, "rate limit window")
	cmd.Flags().BoolVar(&cfg.TrustProxy, "trust-proxy", cfg.TrustProxy, "take client IPs from proxy headers")
	return cmd
}
