package cli

import (
	"github.com/katalvlaran/tspanneal/internal/config"
	"github.com/katalvlaran/tspanneal/internal/httpapi"
	"github.com/katalvlaran/tspanneal/internal/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := loggerFromContext(cmd.Context())
			log.Info("starting API",
				zap.Int("port", c.cfg.Server.Port),
				zap.Duration("timeout", c.cfg.Server.Timeout),
				zap.Float64("rate_limit", c.cfg.Server.RateLimit))

			api := httpapi.NewAPI(log, c.cfg, metrics.New(), nil)

			return api.Run(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.Int("port", config.DefaultPort, "listen port")
	fs.Duration("timeout", config.DefaultTimeout, "per-request search deadline")
	fs.Float64("rate-limit", config.DefaultRateLimit, "requests per second (0 disables)")
	fs.Int("burst", config.DefaultBurst, "rate limiter burst")
	fs.Int("max-concurrent", config.DefaultMaxConcurrent, "concurrent searches")

	return cmd
}
