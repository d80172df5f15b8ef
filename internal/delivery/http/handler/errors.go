package handler

import (
	"errors"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/offer"
	"jobtrack/internal/llm"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates sentinel errors into boundary responses. Upstream
// and parse failures stay 500 with a generic message; the cause is logged by
// the error middleware, never sent to the client.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, llm.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, usecase.ErrProfileIncomplete):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please complete your profile with CV text first", err)
	case errors.Is(err, offer.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Offer not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	return userID, nil
}
