package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/mesto-api/internal/platform/metrics"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func newHTTPServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// serve runs the API and metrics servers until ctx is canceled or either
// server fails, then shuts both down gracefully.
func (app *application) serve(ctx context.Context) error {
	servers := []*http.Server{
		newHTTPServer(app.config.Server.Port, app.router()),
		newHTTPServer(app.config.Server.MetricsPort, metrics.NewHandler(app.db)),
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			app.logger.Info("starting server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("server on %s failed: %w", srv.Addr, err)
			}
		}(srv)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		app.logger.Info("shutting down servers")
	case serveErr = <-errCh:
		app.logger.Error("server failed, shutting down", "error", serveErr)
	}

	return errors.Join(serveErr, shutdown(servers...))
}

func shutdown(servers ...*http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown of %s failed: %w", srv.Addr, err))
		}
	}
	return errors.Join(errs...)
}
