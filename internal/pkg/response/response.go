package response

import (
	"errors"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
	"github.com/evandrarf/linguaflow-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"
)

type Response struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      any    `json:"error,omitempty"`
	Data       any    `json:"data,omitempty"`
	Meta       any    `json:"meta,omitempty"`
}

func NewInternalServerError() *Response {
	res := &Response{
		Success:    false,
		Message:    "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
	}
	return res
}

// NewFailed maps err onto a status code: fiber errors keep their code,
// validation field errors are 400 and apperror kinds map to 400/404/503/422.
func NewFailed(msg string, err error, logger *logrus.Logger) *Response {
	res := &Response{
		Success:    false,
		Message:    msg,
		StatusCode: fiber.StatusInternalServerError,
	}

	var (
		fiberErr      *fiber.Error
		fieldsErr     *validate.FieldsError
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		networkErr    *apperror.NetworkError
		dataErr       *apperror.DataError
	)

	switch {
	case errors.As(err, &fiberErr):
		res.StatusCode = fiberErr.Code
		if fiberErr.Message != "" {
			res.Error = fiberErr.Message
		}
	case errors.As(err, &fieldsErr):
		res.StatusCode = fiber.StatusBadRequest
		res.Error = fieldsErr.Fields
	case errors.As(err, &validationErr):
		res.StatusCode = fiber.StatusBadRequest
		res.Error = validationErr.Message
	case errors.As(err, &notFoundErr):
		res.StatusCode = fiber.StatusNotFound
		res.Error = notFoundErr.Error()
	case errors.As(err, &networkErr):
		res.StatusCode = fiber.StatusServiceUnavailable
		res.Error = "upstream service unavailable"
		res.Meta = fiber.Map{"retryable": true}
	case errors.As(err, &dataErr):
		res.StatusCode = fiber.StatusUnprocessableEntity
		res.Error = dataErr.Error()
	}

	if logger != nil && res.StatusCode >= fiber.StatusInternalServerError {
		logger.Error(err)
	}

	return res
}

func NewSuccess(msg string, data any, meta any) *Response {
	res := &Response{
		Success:    true,
		Message:    msg,
		StatusCode: fiber.StatusOK,
		Data:       data,
		Meta:       meta,
	}

	return res
}

func NewCreated(msg string, data any) *Response {
	res := NewSuccess(msg, data, nil)
	res.StatusCode = fiber.StatusCreated
	return res
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	return ctx.Status(r.StatusCode).JSON(r)
}
