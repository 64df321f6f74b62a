package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/config"
	"github.com/manzil-geoservice/internal/delivery/http/handler"
	"github.com/manzil-geoservice/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	locationHandler  *handler.LocationHandler
	summaryHandler   *handler.SummaryHandler
	statsHandler     *handler.StatsHandler
	hierarchyHandler *handler.HierarchyHandler
	addressHandler   *handler.AddressHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	locationHandler *handler.LocationHandler,
	summaryHandler *handler.SummaryHandler,
	statsHandler *handler.StatsHandler,
	hierarchyHandler *handler.HierarchyHandler,
	addressHandler *handler.AddressHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Manzil Geoservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		locationHandler:  locationHandler,
		summaryHandler:   summaryHandler,
		statsHandler:     statsHandler,
		hierarchyHandler: hierarchyHandler,
		addressHandler:   addressHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Point resolve routes
	api.Post("/resolve", s.locationHandler.Resolve)
	api.Get("/resolve", s.locationHandler.ResolveGET)

	// Hierarchy list routes
	api.Get("/regions", s.hierarchyHandler.ListRegions)
	api.Get("/districts", s.hierarchyHandler.ListDistricts)
	api.Get("/districts/:id/real-estate", s.hierarchyHandler.ListRealEstate)
	api.Get("/mahallas", s.hierarchyHandler.ListMahallas)
	api.Get("/streets", s.hierarchyHandler.ListStreets)

	// Dashboard search
	api.Get("/search", s.hierarchyHandler.Search)

	// Summary tree
	api.Get("/summary", s.summaryHandler.GetSummaryTree)
	api.Delete("/summary/cache", s.summaryHandler.InvalidateCache)

	// Stats panel
	api.Get("/stats", s.statsHandler.GetStats)

	// Address routes
	api.Post("/addresses", s.addressHandler.Create)
	api.Get("/addresses/:id", s.addressHandler.GetByID)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
