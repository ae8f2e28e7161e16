package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockboard/internal/config"
	"stockboard/internal/database"
	handlers "stockboard/internal/handler"
	"stockboard/internal/repository"
	"stockboard/internal/router"
	"stockboard/internal/service"
	"stockboard/internal/storage"
)

// App connects to DynamoDB (and MinIO when enabled) and returns the fully
// wired API handler.
func App(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DynamoDB: %w", err)
	}

	var imageStorage storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MinIO: %w", err)
		}
		imageStorage = minioClient
	} else {
		slog.Info("image storage disabled")
	}

	repo := repository.NewRepository(db, cfg.DynamoDB.UsersTable, cfg.DynamoDB.UsernameIdx, cfg.DynamoDB.PostsTable)
	services := service.NewService(repo, cfg, imageStorage)
	h := handlers.NewHandlers(services, db, cfg)

	return router.NewAPIRouter(h, cfg, services.Auth), nil
}

// Serve runs handler on the configured port until SIGINT or SIGTERM, then
// drains in-flight requests.
func Serve(name string, port int, handler http.Handler) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "service", name, "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	case sig := <-quit:
		slog.Info("shutting down HTTP server", "service", name, "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	slog.Info("server stopped", "service", name)
	return nil
}
