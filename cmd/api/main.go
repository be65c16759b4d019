package main

// @title Branch Finder API
// @version 1.0.0
// @description Finds Sparkasse branches, ATMs and self-service points near a coordinate.
// @description
// @description Main features:
// @description - Radius search with type, opening hours and facility filters
// @description - Location details with opening hours and closures
// @description - Facility catalog, object types and region configuration

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/branch-finder/docs/swagger"
	"github.com/branch-finder/internal/bootstrap"
	"github.com/branch-finder/internal/config"
	httpDelivery "github.com/branch-finder/internal/delivery/http"
	"github.com/branch-finder/internal/delivery/http/handler"
	"github.com/branch-finder/internal/pkg/logger"
	"github.com/branch-finder/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Branch Finder")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("provider", cfg.Provider.Mode),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 3. Location provider
	provider, err := bootstrap.NewLocationProvider(startCtx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize location provider", zap.Error(err))
	}
	defer func() {
		if err := provider.Close(); err != nil {
			log.Error("Failed to close location provider", zap.Error(err))
		}
	}()

	// 4. Response cache
	cacheRepo, err := bootstrap.NewCache(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := cacheRepo.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Facility catalog, needed to resolve facility filters
	catalog, err := usecase.LoadFacilityCatalog(startCtx, provider)
	if err != nil {
		log.Fatal("Failed to load facility catalog", zap.Error(err))
	}
	log.Info("Facility catalog loaded", zap.Int("facilities", catalog.Len()))

	// 6. Initialize Use Cases
	searchUC := usecase.NewSearchUseCase(provider, catalog, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	locationUC := usecase.NewLocationUseCase(provider, cacheRepo, log, cfg.Cache.DetailCacheTTL)
	referenceUC := usecase.NewReferenceUseCase(provider, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	checks := map[string]handler.HealthCheck{}
	if provider.Health != nil {
		checks["provider"] = handler.HealthCheck(provider.Health)
	}
	if cacheRepo.Health != nil {
		checks["redis"] = handler.HealthCheck(cacheRepo.Health)
	}

	locationHandler := handler.NewLocationHandler(searchUC, locationUC, log)
	referenceHandler := handler.NewReferenceHandler(referenceUC, log)
	healthHandler := handler.NewHealthHandler(provider.Mode, checks, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, locationHandler, referenceHandler, healthHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
