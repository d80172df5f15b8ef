package handler

import (
	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/profile"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type upsertProfileRequest struct {
	CVText      string              `json:"cv_text"`
	Preferences profile.Preferences `json:"preferences"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/profile", h.Get)
	r.Post("/profile", h.Upsert)
}

// Get returns the caller's profile, or a null payload when none exists yet.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	if p == nil {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(*p))
}

func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	p, err := h.uc.Upsert(c.Context(), userID, usecase.UpsertProfileInput{
		CVText:      req.CVText,
		Preferences: req.Preferences,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}
