package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adboard/internal/delivery"
	"adboard/internal/infrastructure"
	"adboard/internal/usecase"
	"adboard/pkg/config"
	"adboard/pkg/logger"
	"adboard/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.WithFields(map[string]any{
		"port":        cfg.Server.Port,
		"environment": cfg.Server.Environment,
		"advertisers": cfg.Dashboard.Advertisers,
	}).Info("Starting server")

	m := metrics.New(prometheus.DefaultRegisterer)

	repo := infrastructure.NewRecordRepository(log)
	generator := infrastructure.NewGenerator(cfg.Dashboard.Keywords, cfg.Dashboard.Days, cfg.Dashboard.Seed)
	exportClient := infrastructure.NewHTTPClient(
		cfg.External.SinkURL,
		cfg.External.SinkSecret,
		cfg.External.RequestTimeout,
		cfg.External.RateLimitPerSecond,
		log,
		m,
	)

	dashboardService := usecase.NewDashboardService(repo, exportClient, log, m)
	seedService := usecase.NewSeedService(repo, generator, log, m, cfg.Dashboard.WorkerPoolSize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedService.Run(ctx, cfg.Dashboard.Advertisers); err != nil {
		log.WithError(err).Error("Initial seed failed")
		os.Exit(1)
	}

	handlers := delivery.NewHTTPHandlers(
		dashboardService,
		seedService,
		log,
		cfg.Dashboard.Advertisers,
		cfg.Server.IsDevelopment(),
	)
	router := delivery.NewHTTPRouter(handlers, log, m, delivery.RouterOptions{
		Timeout:            cfg.Server.RequestTimeout,
		RateLimitPerSecond: cfg.Server.RateLimitPerSecond,
		RateLimitBurst:     cfg.Server.RateLimitBurst,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server stopped unexpectedly")
			stop()
		}
	}()
	log.WithField("addr", server.Addr).Info("Server listening")

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
		return
	}
	log.Info("Server stopped")
}
