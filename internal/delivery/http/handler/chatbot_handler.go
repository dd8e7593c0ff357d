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
	ChatbotHandler interface {
		Send(ctx *fiber.Ctx) error
		SessionHistory(ctx *fiber.Ctx) error
		History(ctx *fiber.Ctx) error
		ClearHistory(ctx *fiber.Ctx) error
	}

	chatbotHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ChatbotUsecase
	}
)

func NewChatbotHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ChatbotUsecase) ChatbotHandler {
	return &chatbotHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /chatbot/sessions/:session_id
func (h *chatbotHandler) Send(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.CHATBOT_SEND_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.ChatRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CHATBOT_SEND_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Send(ctx.UserContext(), user, sessionID, req.Message)
	if err != nil {
		return response.NewFailed(domain.CHATBOT_SEND_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHATBOT_SEND_SUCCESS, result, nil).Send(ctx)
}

// GET /chatbot/sessions/:session_id/history
func (h *chatbotHandler) SessionHistory(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	history, err := h.usecase.SessionHistory(ctx.UserContext(), user, ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.CHATBOT_HISTORY_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHATBOT_HISTORY_SUCCESS, history, nil).Send(ctx)
}

// GET /chatbot/history
func (h *chatbotHandler) History(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	history, err := h.usecase.History(ctx.UserContext(), user)
	if err != nil {
		return response.NewFailed(domain.CHATBOT_HISTORY_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHATBOT_HISTORY_SUCCESS, history, nil).Send(ctx)
}

// DELETE /chatbot/history
func (h *chatbotHandler) ClearHistory(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	result, err := h.usecase.ClearHistory(ctx.UserContext(), user)
	if err != nil {
		return response.NewFailed(domain.CHATBOT_HISTORY_CLEAR_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CHATBOT_HISTORY_CLEAR_SUCCESS, result, nil).Send(ctx)
}
