package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/observability"
	"github.com/spec-kit/pilgrim-travel/internal/web"
)

// multipartOverhead leaves room for form boundaries and fields around an upload.
const multipartOverhead = 1 << 20

// ServerConfig controls the fiber application.
type ServerConfig struct {
	AppName        string
	RequestTimeout time.Duration
	MaxUploadBytes int64
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	Routes         RouteConfig
}

// NewServer builds the fiber application with views, middlewares and routes.
func NewServer(cfg ServerConfig) *fiber.App {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bodyLimit := fiber.DefaultBodyLimit
	if limit := cfg.MaxUploadBytes + multipartOverhead; int(limit) > bodyLimit {
		bodyLimit = int(limit)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 web.Engine(),
		BodyLimit:             bodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, cfg.Metrics, cfg.RequestTimeout)
	RegisterRoutes(app, cfg.Routes)
	return app
}
