// cmd/api/server.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 20 * time.Second

// serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// gracefully. It returns nil after a clean shutdown.
func (app *applicationDependencies) serve() error {
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server",
			"address", apiServer.Addr,
			"environment", app.config.Environment,
			"version", appVersion,
		)
		serveErr <- apiServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		// ListenAndServe only returns early when the listener fails.
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", "address", apiServer.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	app.logger.Info("server stopped", "address", apiServer.Addr)
	return nil
}
