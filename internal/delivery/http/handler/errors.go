package handler

import (
	"errors"

	"projectlink/internal/delivery/http/middleware"
	"projectlink/internal/delivery/http/response"
	"projectlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var inputErr *usecase.InputError
	switch {
	case errors.As(err, &inputErr):
		return middleware.NewValidationError("Validation failed", inputErr.Messages, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNoSession):
		return middleware.NewAppError(fiber.StatusUnauthorized, "No active session", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrUnknownKind):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown kind", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badBody(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
}
