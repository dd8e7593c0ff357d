package handler

import (
	"strconv"

	"github.com/evandrarf/linguaflow-be/internal/delivery/http/domain"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/middleware"
	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/evandrarf/linguaflow-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func mustUser(ctx *fiber.Ctx) (auth.User, bool) {
	return middleware.CurrentUser(ctx)
}

func unauthorized(ctx *fiber.Ctx, logger *logrus.Logger) error {
	return response.NewFailed(domain.UNAUTHORIZED, fiber.NewError(fiber.StatusUnauthorized, "missing user"), logger).Send(ctx)
}

func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" must be a positive integer")
	}
	return uint(id), nil
}
