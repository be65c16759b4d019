package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/branch-finder/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError renders err as the error envelope. Provider failures are classified,
// anything unknown becomes a 500 without leaking internals.
func SendError(c *fiber.Ctx, err error) error {
	appErr := ToAppError(err)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}

// ToAppError resolves err to the AppError sent to the caller.
func ToAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			return errors.New(errors.CodeNotFound, fiberErr.Message, fiberErr.Code)
		case fiberErr.Code >= 400 && fiberErr.Code < 500:
			return errors.New(errors.CodeInvalidArguments, fiberErr.Message, fiberErr.Code)
		}
	}

	return errors.FromProvider(err)
}
