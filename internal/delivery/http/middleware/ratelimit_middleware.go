package middleware

import (
	"strconv"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/domain"
	"github.com/evandrarf/linguaflow-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
)

// ChatRateLimitMiddleware limits chatbot messages per user. It must run after
// AuthMiddleware. A failing counter store lets the request through.
func (m *Middleware) ChatRateLimitMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := CurrentUser(ctx)
		if !ok {
			return ctx.Next()
		}

		decision, err := m.ChatLimiter.Allow(ctx.UserContext(), "chat:"+user.ID)
		if err != nil {
			if m.Log != nil {
				m.Log.WithField("user_id", user.ID).WithError(err).Warn("rate limiter unavailable, allowing request")
			}
			return ctx.Next()
		}

		if decision.Limit > 0 {
			ctx.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			ctx.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		}
		if !decision.Allowed {
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(decision.ResetIn.Seconds())+1))
			return response.NewFailed(domain.CHATBOT_RATE_LIMITED, fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded"), m.Log).Send(ctx)
		}
		return ctx.Next()
	}
}
