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
	WordHandler interface {
		List(ctx *fiber.Ctx) error
		Create(ctx *fiber.Ctx) error
		Update(ctx *fiber.Ctx) error
		Delete(ctx *fiber.Ctx) error
		Import(ctx *fiber.Ctx) error
	}

	wordHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.WordUsecase
	}
)

func NewWordHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.WordUsecase) WordHandler {
	return &wordHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /words?q=
func (h *wordHandler) List(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var query entity.ListWordsQuery
	if err := h.validator.ParseQueryAndValidate(ctx, &query); err != nil {
		return response.NewFailed(domain.WORD_LIST_FAILED, err, h.logger).Send(ctx)
	}

	words, err := h.usecase.List(ctx.UserContext(), user, query)
	if err != nil {
		return response.NewFailed(domain.WORD_LIST_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.WORD_LIST_SUCCESS, words, fiber.Map{"total": len(words)}).Send(ctx)
}

// POST /words
func (h *wordHandler) Create(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	var req entity.WordRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.WORD_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	word, err := h.usecase.Create(ctx.UserContext(), user, req)
	if err != nil {
		return response.NewFailed(domain.WORD_CREATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewCreated(domain.WORD_CREATE_SUCCESS, word).Send(ctx)
}

// PUT /words/:id
func (h *wordHandler) Update(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return response.NewFailed(domain.WORD_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	var req entity.WordRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.WORD_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	word, err := h.usecase.Update(ctx.UserContext(), user, id, req)
	if err != nil {
		return response.NewFailed(domain.WORD_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.WORD_UPDATE_SUCCESS, word, nil).Send(ctx)
}

// DELETE /words/:id
func (h *wordHandler) Delete(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		return response.NewFailed(domain.WORD_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	if err := h.usecase.Delete(ctx.UserContext(), user, id); err != nil {
		return response.NewFailed(domain.WORD_DELETE_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.WORD_DELETE_SUCCESS, fiber.Map{"id": id}, nil).Send(ctx)
}

// POST /words/import (multipart, field "file")
func (h *wordHandler) Import(ctx *fiber.Ctx) error {
	user, ok := mustUser(ctx)
	if !ok {
		return unauthorized(ctx, h.logger)
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return response.NewFailed(domain.WORD_IMPORT_FAILED, fiber.NewError(fiber.StatusBadRequest, "file is required"), h.logger).Send(ctx)
	}

	file, err := header.Open()
	if err != nil {
		return response.NewFailed(domain.WORD_IMPORT_FAILED, fiber.NewError(fiber.StatusBadRequest, "failed to read file"), h.logger).Send(ctx)
	}
	defer file.Close()

	result, err := h.usecase.Import(ctx.UserContext(), user.ID, file)
	if err != nil {
		return response.NewFailed(domain.WORD_IMPORT_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.WORD_IMPORT_SUCCESS, result, nil).Send(ctx)
}
