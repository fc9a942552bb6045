package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func (api *API) newServer(ctx context.Context) *http.Server {
	return &http.Server{
		Handler: api.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      api.cfg.Server.Timeout + 10*time.Second,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          zap.NewStdLog(api.log),
	}
}

// Run listens on the configured port and serves until ctx is done.
func (api *API) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", api.cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("httpapi: listen: %w", err)
	}

	return api.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully. In-flight
// solves see ctx canceled and return their best tour so far. A nil error
// means a clean shutdown.
func (api *API) Serve(ctx context.Context, ln net.Listener) error {
	srv := api.newServer(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		api.log.Info("API listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpapi: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		api.log.Info("shutting down API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
