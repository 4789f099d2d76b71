// Package server assembles the fiber application: middleware stack, error
// handler and routes.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"music-storefront/internal/config"
	"music-storefront/internal/handler"
	"music-storefront/internal/middleware"
	"music-storefront/internal/service"
)

const maxBodySize = 6 << 20

func New(cfg *config.Config, services *service.Services, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "music-storefront",
		ErrorHandler:          middleware.NewErrorHandler(logger),
		BodyLimit:             maxBodySize,
		DisableStartupMessage: !cfg.IsDevelopment(),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: middleware.RequestIDContextKey}))
	app.Use(middleware.RequestContext())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	cookie := middleware.SessionCookie{
		Name:   cfg.SessionCookieName,
		Secure: cfg.SessionCookieSecure,
	}
	handlers := handler.NewHandlers(services, cookie)
	handler.SetupRoutes(app, handlers, services, cookie, logger)

	return app
}
