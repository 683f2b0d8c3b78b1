package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	srv.server = &http.Server{
		Addr:        fmt.Sprintf(":%d", srv.port),
		Handler:     srv.gin,
		ReadTimeout: readTimeout,
		// zero means no limit
		WriteTimeout: srv.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", srv.server.Addr)
		errCh <- srv.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	srv.draining.Store(true)
	srv.l.Info(context.Background(), "HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
