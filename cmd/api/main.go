package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/leadinsights/fireflies-analyzer/internal/adapter/export"
	"github.com/leadinsights/fireflies-analyzer/internal/adapter/handler"
	"github.com/leadinsights/fireflies-analyzer/internal/infrastructure/cache"
	"github.com/leadinsights/fireflies-analyzer/internal/infrastructure/external/fireflies"
	"github.com/leadinsights/fireflies-analyzer/internal/usecase/analysis"
	pkgai "github.com/leadinsights/fireflies-analyzer/pkg/ai"
	"github.com/leadinsights/fireflies-analyzer/pkg/config"
	pkglogger "github.com/leadinsights/fireflies-analyzer/pkg/logger"
	pkgvalidator "github.com/leadinsights/fireflies-analyzer/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if status := cfg.Validate(); !status.Ready {
		for _, msg := range status.Messages {
			logger.Warn("config.incomplete", zap.String("message", msg))
		}
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOriginList(),
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	firefliesClient := fireflies.NewClient(&cfg.Fireflies)
	meetingCache := cache.NewMeetingStore(cfg.CacheTTL())

	provider, err := pkgai.NewProvider(&cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	logger.Info("ai.provider.selected", zap.String("provider", provider.Name()))

	exporter, err := export.NewExporter(cfg.Export.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize exporter: %v", err)
	}

	analysisService := analysis.NewService(firefliesClient, provider, meetingCache, cfg, logger)
	analysisController := handler.NewAnalysisController(analysisService, exporter, cfg, logger)

	router := handler.NewRouter(cfg, analysisController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("server.starting",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("server.stopping")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server.stopped")
}
