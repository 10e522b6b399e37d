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

	"github.com/phambaophuc/image-trim/internal/config"
	"github.com/phambaophuc/image-trim/internal/http/handlers"
	"github.com/phambaophuc/image-trim/internal/http/routes"
	"github.com/phambaophuc/image-trim/internal/logger"
	"github.com/phambaophuc/image-trim/internal/services/processor"
	"github.com/phambaophuc/image-trim/internal/services/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load("info")
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize services
	processor := processor.NewImageProcessor(
		processor.WithCompression(cfg.Image.Compression),
		processor.WithAutoOrientation(cfg.Image.AutoOrientation),
	)

	var bannerStore handlers.BannerStore
	storageService, err := storage.NewStorageService(cfg.Supabase)
	switch {
	case errors.Is(err, storage.ErrStorageNotConfigured):
		logger.Warn("Supabase storage not configured, banner uploads disabled")
	case err != nil:
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	default:
		bannerStore = storageService
	}

	// Initialize handlers
	imageHandler := handlers.NewImageHandler(processor, bannerStore, logger, cfg)

	router := routes.NewRouter(imageHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
