package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"collabhive-go/internal/app"
	"collabhive-go/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("collabhive: init failed", "err", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("collabhive: close failed", "err", err)
		}
	}()

	srv := application.HTTPServer()
	serveErr := make(chan error, 1)
	go func() {
		log.Info("collabhive: serving", "addr", srv.Addr, "env", application.Env())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("collabhive: shutting down")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Critical("collabhive: server stopped", "addr", srv.Addr, "err", err)
			return 1
		}
		return 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("collabhive: graceful shutdown failed", "err", err)
		return 1
	}
	return 0
}
