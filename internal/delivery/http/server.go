package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/config"
	"github.com/branch-finder/internal/delivery/http/handler"
	"github.com/branch-finder/internal/delivery/http/middleware"
	"github.com/branch-finder/internal/metrics"
	"github.com/branch-finder/internal/pkg/utils"
)

// Server - HTTP server on top of Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	locationHandler  *handler.LocationHandler
	referenceHandler *handler.ReferenceHandler
	healthHandler    *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	locationHandler *handler.LocationHandler,
	referenceHandler *handler.ReferenceHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Branch Finder",
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
		referenceHandler: referenceHandler,
		healthHandler:    healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS(s.config.CORSOrigins()))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Health)

	// Locations
	api.Get("/locations/search", s.locationHandler.Search)
	api.Post("/locations/search", s.locationHandler.SearchPost)
	api.Get("/locations/:id", s.locationHandler.GetByID)

	// Reference data
	api.Get("/facilities", s.referenceHandler.ListFacilities)
	api.Get("/object-types", s.referenceHandler.ListObjectTypes)
	api.Get("/configuration", s.referenceHandler.GetConfiguration)
}

// App exposes the fiber app, mainly for app.Test in handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escaped a handler (unknown routes, body
// limits, panics) in the same envelope as handler errors.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := utils.ToAppError(err)

		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("request_id", middleware.RequestID(c)),
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
		}

		return c.Status(appErr.StatusCode).JSON(utils.ErrorResponse{Error: appErr})
	}
}
