package handler

import (
	"errors"

	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// parseID reads a uuid path parameter. A malformed id cannot match any row,
// so it is reported as not found.
func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, repository.ErrNotFound
	}
	return id, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "invalid request body",
	}, err)
}

// handleError converts usecase errors into the response envelope. Only
// unexpected errors are logged.
func handleError(c *fiber.Ctx, logger *zap.Logger, err error, message string) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, repository.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "not found",
		})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, repository.ErrDuplicate):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "record already exists",
		}, err)
	default:
		logger.Error(message, zap.Error(err), zap.String("path", c.Path()))
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: message,
		}, err)
	}
}
