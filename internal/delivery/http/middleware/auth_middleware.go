package middleware

import (
	"strings"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/domain"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// AuthMiddleware requires a valid "Bearer <jwt>" header and stores the
// resolved auth.User in the request locals.
func (m *Middleware) AuthMiddleware() fiber.Handler {
	secret := ""
	if m.Config != nil {
		secret = m.Config.GetString("auth.jwt_secret")
	}

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(ctx, m, "authorization header required")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return unauthorized(ctx, m, "invalid authorization header format")
		}

		user, err := auth.ValidateAccessToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			return unauthorized(ctx, m, "invalid or expired token")
		}

		ctx.Locals(userLocalsKey, user)
		return ctx.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(ctx *fiber.Ctx) (auth.User, bool) {
	user, ok := ctx.Locals(userLocalsKey).(auth.User)
	return user, ok && user.ID != ""
}

func unauthorized(ctx *fiber.Ctx, m *Middleware, reason string) error {
	return response.NewFailed(domain.UNAUTHORIZED, fiber.NewError(fiber.StatusUnauthorized, reason), m.Log).Send(ctx)
}
