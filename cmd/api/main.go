package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-planner/config"
	_ "event-planner/docs" // Swagger docs
	"event-planner/internal/bootstrap"
	eventHTTP "event-planner/internal/event/delivery/http"
	"event-planner/internal/httpserver"
	"event-planner/internal/middleware"
	"event-planner/pkg/log"
)

const writeTimeoutMargin = 15 * time.Second

// @title       Event Planner API
// @description Plans events from free text: venues, vendors, schedule, logistics, catering, theme and weather.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Event Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event domain
	eventUC, err := bootstrap.NewEventUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize event use case: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		WriteTimeout: cfg.Planner.RunTimeout + writeTimeoutMargin,
		EventHandler: eventHTTP.New(logger, eventUC),
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		}),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
