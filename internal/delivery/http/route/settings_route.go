package route

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoute(api fiber.Router, handler handler.SettingsHandler) {
	api.Get("/goals", handler.GetGoals)
	api.Put("/goals", handler.UpdateGoals)
	api.Get("/preferences", handler.GetPreferences)
	api.Put("/preferences", handler.UpdatePreferences)
}
