package route

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupWordRoute(api fiber.Router, handler handler.WordHandler) {
	router := api.Group("/words")
	{
		router.Get("/", handler.List)
		router.Post("/", handler.Create)
		router.Post("/import", handler.Import)
		router.Put("/:id", handler.Update)
		router.Delete("/:id", handler.Delete)
	}
}
