package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront-catalog-service/internal/api"
	"storefront-catalog-service/internal/config"
	"storefront-catalog-service/internal/domain"
	"storefront-catalog-service/internal/logger"
	"storefront-catalog-service/internal/store"
)

const serviceName = "StorefrontCatalogService"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: no .env file found, relying on system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: error loading configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("FATAL: error building logger: %v", err)
	}
	defer zl.Sync()

	zl.Info("starting service",
		zap.String("app_env", cfg.AppEnv),
		zap.String("log_level", cfg.LogLevel),
	)

	var seed []domain.Product
	if cfg.SeedCatalog {
		seed = domain.SeedProducts()
		zl.Info("seed catalog loaded", zap.Int("products", len(seed)))
	}
	cat := store.NewCatalog(zl, seed)

	handler := api.NewHTTPHandler(cat, zl)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	registerHealthCheck(router)
	handler.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutRead,
		WriteTimeout: cfg.HTTPServer.TimeoutWrite,
		IdleTimeout:  cfg.HTTPServer.TimeoutIdle,
	}

	go func() {
		zl.Info("HTTP server listening", zap.String("port", cfg.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("HTTP server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	waitForShutdown(zl, httpServer)
	zl.Info("service shutdown complete")
}

func registerHealthCheck(router *chi.Mux) {
	router.Get("/api/v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "healthy",
			"serviceName": serviceName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func waitForShutdown(zl *logger.Logger, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	zl.Info("received signal, shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Warn("HTTP server graceful shutdown failed", zap.Error(err))
		return
	}
	zl.Info("HTTP server gracefully shut down")
}
