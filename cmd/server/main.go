package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/bootstrap"
	"portfolio/internal/middleware"
	"portfolio/internal/server"
)

func main() {
	rt, err := bootstrap.InitRuntime()
	if err != nil {
		middleware.Logger.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv, err := server.NewServerWithDeps(rt.Config, rt.DB, rt.Redis)
	if err != nil {
		middleware.Logger.Error("server init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			middleware.Logger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-quit:
		middleware.Logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		middleware.Logger.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
