package main

// @title Manzil Geoservice API
// @version 1.0.0
// @description Геосервис административной иерархии Узбекистана: области, районы, махалли и улицы с геометрией. Предоставляет точечный резолв координат в адресную цепочку, сводное дерево иерархии со счётчиками, панель статистики и создание точечных адресов.
// @description
// @description Основные возможности:
// @description - Резолв точки в цепочку улица/махалля/район/область
// @description - Сводное дерево областей и районов со счётчиками потомков
// @description - Счётчики для панели статистики с учётом текущего выбора
// @description - Поиск по имени и SOATO-коду среди всех типов сущностей
// @description - Создание адресов с денормализованным снимком иерархии

// @contact.name API Support
// @contact.email support@manzil-geoservice.uz

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

	_ "github.com/manzil-geoservice/docs"
	"github.com/manzil-geoservice/internal/config"
	httpDelivery "github.com/manzil-geoservice/internal/delivery/http"
	"github.com/manzil-geoservice/internal/delivery/http/handler"
	"github.com/manzil-geoservice/internal/pkg/logger"
	"github.com/manzil-geoservice/internal/repository/cache"
	"github.com/manzil-geoservice/internal/repository/postgres"
	"github.com/manzil-geoservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Manzil Geoservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	hierarchyRepo := postgres.NewHierarchyRepository(db, log)
	addressRepo := postgres.NewAddressRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	log.Info("Repositories initialized")

	// 7. Initialize use cases
	resolveUC := usecase.NewResolveUseCase(hierarchyRepo, log)
	hierarchyUC := usecase.NewHierarchyUseCase(hierarchyRepo, log)
	summaryUC := usecase.NewSummaryUseCase(hierarchyRepo, cacheRepo, log, cfg.Cache.SummaryTreeTTL)
	statsUC := usecase.NewStatsUseCase(hierarchyRepo, cacheRepo, log, cfg.Cache.TotalsTTL)
	addressUC := usecase.NewAddressUseCase(resolveUC, addressRepo, log)
	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	locationHandler := handler.NewLocationHandler(resolveUC, log)
	summaryHandler := handler.NewSummaryHandler(summaryUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, hierarchyUC, log)
	hierarchyHandler := handler.NewHierarchyHandler(hierarchyUC, log)
	addressHandler := handler.NewAddressHandler(addressUC, addressRepo, log)
	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		locationHandler,
		summaryHandler,
		statsHandler,
		hierarchyHandler,
		addressHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
