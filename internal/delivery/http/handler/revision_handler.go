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
	RevisionHandler interface {
		Create(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		Finish(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		List(ctx *fiber.Ctx) error
	}

	revisionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.RevisionUsecase
	}
)

func NewRevisionHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.RevisionUsecase) RevisionHandler {
	return &revisionHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /revisions
func (h *revisionHandler) Create(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var req entity.CreateRevisionRequest
	if len(ctx.Body()) > 0 {
		if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
			return response.NewFailed(domain.REVISION_CREATE_FAILED, err, h.logger).Send(ctx)
		}
	}

	revision, err := h.usecase.Create(ctx.UserContext(), user, req)
	if err != nil {
		return response.NewFailed(domain.REVISION_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.REVISION_CREATE_SUCCESS, revision).Send(ctx)
}

// POST /revisions/:session_id/answers
func (h *revisionHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.REVISION_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), user, ctx.Params("session_id"), req)
	if err != nil {
		return response.NewFailed(domain.REVISION_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.REVISION_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// POST /revisions/:session_id/finish
func (h *revisionHandler) Finish(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	summary, err := h.usecase.Finish(ctx.UserContext(), user, ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.REVISION_FINISH_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.REVISION_FINISH_SUCCESS, summary, nil).Send(ctx)
}

// GET /revisions/:session_id
func (h *revisionHandler) Get(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	revision, err := h.usecase.Get(ctx.UserContext(), user, ctx.Params("session_id"))
	if err != nil {
		return response.NewFailed(domain.REVISION_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.REVISION_GET_SUCCESS, revision, nil).Send(ctx)
}

// GET /revisions
func (h *revisionHandler) List(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	revisions, err := h.usecase.List(ctx.UserContext(), user)
	if err != nil {
		return response.NewFailed(domain.REVISION_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.REVISION_LIST_SUCCESS, revisions, nil).Send(ctx)
}
