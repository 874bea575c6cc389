package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 30 * time.Second

// Run starts the HTTP server, then blocks until a shutdown signal.
// In-flight requests, including their alert dispatches, get shutdownTimeout to finish.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on %s", server.Addr)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		srv.logger.Info(ctx, sig)
	case err := <-errCh:
		srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		return err
	}

	srv.logger.Info(ctx, "Stopping crisis alert service...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
		return err
	}

	return nil
}
