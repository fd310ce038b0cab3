package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/utakatalp/fixture-generator/internal/api"
	"github.com/utakatalp/fixture-generator/internal/config"
	"github.com/utakatalp/fixture-generator/internal/logging"
	"github.com/utakatalp/fixture-generator/internal/metrics"
	"github.com/utakatalp/fixture-generator/internal/store"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}

	var rec *metrics.Recorder
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		rec = metrics.NewRecorder()
		metricsHandler = rec.Handler()
	}

	handler := api.NewHandler(store.NewStore(), rec, logger)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(handler, logger, metricsHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.WithField("addr", srv.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("http server failed")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("http server shutdown failed")
		return
	}
	logger.Info("http server stopped")
}
