package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/todo-backend/internal/config"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the store, service and transports, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	a, err := New(cfg, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return a.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln until ctx is cancelled, then drains
// in-flight requests within server.shutdown_timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		a.health.SetReady(true)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.health.SetReady(false)
		a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		a.Close()
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info("server stopped")
	return nil
}
