package route

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupRevisionRoute(api fiber.Router, handler handler.RevisionHandler) {
	router := api.Group("/revisions")
	{
		router.Get("/", handler.List)
		router.Post("/", handler.Create)
		router.Get("/:session_id", handler.Get)
		router.Post("/:session_id/answers", handler.SubmitAnswer)
		router.Post("/:session_id/finish", handler.Finish)
	}
}
