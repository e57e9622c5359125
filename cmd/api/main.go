package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/facemark/facemark/internal/api"
	"github.com/facemark/facemark/internal/config"
	"github.com/facemark/facemark/internal/provider/rekognition"
	"github.com/facemark/facemark/internal/service"
	"github.com/facemark/facemark/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting Facemark API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("collection_id", cfg.CollectionID),
	)

	ctx := context.Background()

	faceClient, err := rekognition.NewClient(ctx, rekognition.Config{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		CollectionID:    cfg.CollectionID,
		MatchThreshold:  cfg.MatchThreshold,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create face client: %w", err)
	}

	// Ensure the collection exists before taking traffic. Registration
	// re-ensures it, so a failure here is not fatal.
	if err := faceClient.EnsureCollection(ctx); err != nil {
		logger.Warn("startup collection ensure failed", slog.Any("error", err))
	}

	storeClient := store.NewClient(store.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseKey,
	}, logger)

	attendanceService := service.NewAttendanceService(storeClient, faceClient, logger)

	router := api.NewRouter(logger, &api.Dependencies{
		Students:   storeClient,
		Attendance: storeClient,
		Faces:      attendanceService,
	})
	router.Setup()

	// Graceful shutdown
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
