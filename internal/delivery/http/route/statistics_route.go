package route

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupStatisticsRoute(api fiber.Router, handler handler.StatisticsHandler) {
	router := api.Group("/statistics")
	{
		router.Get("/", handler.Get)
		router.Post("/preview", handler.Preview)
	}
}
