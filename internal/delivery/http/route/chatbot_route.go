package route

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupChatbotRoute(api fiber.Router, handler handler.ChatbotHandler, m *middleware.Middleware) {
	router := api.Group("/chatbot")
	{
		router.Post("/sessions/:session_id", m.ChatRateLimitMiddleware(), handler.Send)
		router.Get("/sessions/:session_id/history", handler.SessionHistory)
		router.Get("/history", handler.History)
		router.Delete("/history", handler.ClearHistory)
	}
}
