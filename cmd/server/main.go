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

	"github.com/shubhsinghsk/AYLB/internal"
	"github.com/shubhsinghsk/AYLB/internal/email"
	"github.com/shubhsinghsk/AYLB/internal/handler"
	"github.com/shubhsinghsk/AYLB/internal/leads"
	"github.com/shubhsinghsk/AYLB/internal/metrics"
	"github.com/shubhsinghsk/AYLB/internal/middleware"
	"github.com/shubhsinghsk/AYLB/internal/service"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	if cfg.SecretKey == internal.DefaultSecretKey {
		logger.Warn("SECRET_KEY is unset, using the development default")
	}

	// Initialize lead store
	store := leads.NewStore(cfg.LeadsFile)
	if err := store.EnsureInitialized(); err != nil {
		return fmt.Errorf("lead store initialization failed: %w", err)
	}
	logger.Info("Lead store ready", "path", store.Path())

	// Initialize notifier
	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
		To:       cfg.EmailTo,
		Timeout:  cfg.SMTPTimeout,
	}, logger)

	// Initialize template renderer
	renderer, err := handler.NewRenderer(handler.RendererConfig{
		TemplatesDir: "web/templates",
		Logger:       logger,
		IsDev:        cfg.Env == "development",
	})
	if err != nil {
		return fmt.Errorf("renderer initialization failed: %w", err)
	}
	logger.Info("Templates loaded", "count", len(renderer.ListTemplates()))

	// Initialize services
	intakeService := service.NewIntakeService(store, notifier, logger)

	// Initialize handlers
	isSecure := cfg.Env != "development"
	flashes := handler.NewFlashCodec(cfg.SecretKey, isSecure)
	pageHandler := handler.NewPageHandler(renderer, flashes, logger)
	intakeHandler := handler.NewIntakeHandler(intakeService, flashes, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Static files
	staticFS := http.FileServer(http.Dir("web/static"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticFS))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (optionally behind basic auth)
	mux.Handle("GET /metrics", metrics.Handler(cfg.MetricsUsername, cfg.MetricsPassword))

	// Pages and forms
	pageHandler.RegisterRoutes(mux)
	intakeHandler.RegisterRoutes(mux)

	// Middleware stack
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	stack := middleware.Stack(
		middleware.RequestID,
		loggingMw.Handler,
		metrics.Middleware,
		securityMw.Handler,
	)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: stack(mux),
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
