package handler

import (
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/domain"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/entity"
	"github.com/evandrarf/linguaflow-be/internal/delivery/http/usecase"
	"github.com/evandrarf/linguaflow-be/internal/pkg/response"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	StatisticsHandler interface {
		Get(ctx *fiber.Ctx) error
		Preview(ctx *fiber.Ctx) error
	}

	statisticsHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.StatisticsUsecase
	}
)

func NewStatisticsHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.StatisticsUsecase) StatisticsHandler {
	return &statisticsHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /statistics
func (h *statisticsHandler) Get(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	report, err := h.usecase.Get(ctx.UserContext(), user)
	if err != nil {
		return response.NewFailed(domain.STATISTICS_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.STATISTICS_GET_SUCCESS, report, nil).Send(ctx)
}

// POST /statistics/preview
func (h *statisticsHandler) Preview(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var req entity.StatisticsPreviewRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.STATISTICS_PREVIEW_FAILED, err, h.logger).Send(ctx)
	}

	report, err := h.usecase.Preview(ctx.UserContext(), user, req)
	if err != nil {
		return response.NewFailed(domain.STATISTICS_PREVIEW_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.STATISTICS_PREVIEW_SUCCESS, report, nil).Send(ctx)
}
