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
	SettingsHandler interface {
		GetGoals(ctx *fiber.Ctx) error
		UpdateGoals(ctx *fiber.Ctx) error
		GetPreferences(ctx *fiber.Ctx) error
		UpdatePreferences(ctx *fiber.Ctx) error
	}

	settingsHandler struct {
		validator  *validate.Validator
		logger     *logrus.Logger
		goals      usecase.GoalUsecase
		preference usecase.PreferenceUsecase
	}
)

func NewSettingsHandler(validator *validate.Validator, logger *logrus.Logger, goals usecase.GoalUsecase, preference usecase.PreferenceUsecase) SettingsHandler {
	return &settingsHandler{
		validator:  validator,
		logger:     logger,
		goals:      goals,
		preference: preference,
	}
}

// GET /goals
func (h *settingsHandler) GetGoals(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	goals, err := h.goals.Get(ctx.UserContext(), user)
	if err != nil {
		return response.NewFailed(domain.GOAL_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.GOAL_GET_SUCCESS, goals, nil).Send(ctx)
}

// PUT /goals
func (h *settingsHandler) UpdateGoals(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var req entity.UpdateGoalRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.GOAL_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	goals, err := h.goals.Update(ctx.UserContext(), user, req)
	if err != nil {
		return response.NewFailed(domain.GOAL_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.GOAL_UPDATE_SUCCESS, goals, nil).Send(ctx)
}

// GET /preferences
func (h *settingsHandler) GetPreferences(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	preferences, err := h.preference.Get(ctx.UserContext(), user)
	if err != nil {
		return response.NewFailed(domain.PREFERENCE_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PREFERENCE_GET_SUCCESS, preferences, nil).Send(ctx)
}

// PUT /preferences
func (h *settingsHandler) UpdatePreferences(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var req entity.UpdatePreferenceRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PREFERENCE_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	preferences, err := h.preference.Update(ctx.UserContext(), user, req)
	if err != nil {
		return response.NewFailed(domain.PREFERENCE_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PREFERENCE_UPDATE_SUCCESS, preferences, nil).Send(ctx)
}
