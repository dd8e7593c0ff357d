package route

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteConfig struct {
	Api               *fiber.App
	Middleware        *middleware.Middleware
	WordHandler       handler.WordHandler
	RevisionHandler   handler.RevisionHandler
	ChatbotHandler    handler.ChatbotHandler
	StatisticsHandler handler.StatisticsHandler
	SettingsHandler   handler.SettingsHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())
	c.Api.Use(c.Middleware.MetricsMiddleware())

	c.Api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	c.Api.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := c.Api.Group("", c.Middleware.AuthMiddleware())

	SetupWordRoute(api, c.WordHandler)
	SetupRevisionRoute(api, c.RevisionHandler)
	SetupChatbotRoute(api, c.ChatbotHandler, c.Middleware)
	SetupStatisticsRoute(api, c.StatisticsHandler)
	SetupSettingsRoute(api, c.SettingsHandler)
}
