package handler

import (
	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/offer"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OfferHandler struct {
	uc usecase.OfferUsecase
}

type createOfferRequest struct {
	CompanyName        string             `json:"company_name"`
	PositionTitle      string             `json:"position_title"`
	JobDescription     string             `json:"job_description"`
	JobURL             string             `json:"job_url"`
	Location           string             `json:"location"`
	CompanyDescription string             `json:"company_description"`
	Status             string             `json:"status"`
	TechStack          []string           `json:"tech_stack"`
	Analysis           *offer.JobAnalysis `json:"analysis"`
	UserNotes          string             `json:"user_notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewOfferHandler(uc usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

func (h *OfferHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/applications", h.List)
	r.Post("/applications", h.Create)
	r.Get("/applications/:id", h.Get)
	r.Patch("/applications/:id", h.UpdateStatus)
}

func (h *OfferHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	offers, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOfferListResponse(offers))
}

func (h *OfferHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	offerID, err := offerIDFromParam(c)
	if err != nil {
		return err
	}

	o, err := h.uc.Get(c.Context(), userID, offerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOfferResponse(o))
}

func (h *OfferHandler) Create(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req createOfferRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	o, err := h.uc.Create(c.Context(), userID, usecase.CreateOfferInput{
		CompanyName:        req.CompanyName,
		PositionTitle:      req.PositionTitle,
		JobDescription:     req.JobDescription,
		JobURL:             req.JobURL,
		Location:           req.Location,
		CompanyDescription: req.CompanyDescription,
		Status:             req.Status,
		TechStack:          req.TechStack,
		Analysis:           req.Analysis,
		UserNotes:          req.UserNotes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOfferResponse(o))
}

func (h *OfferHandler) UpdateStatus(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	offerID, err := offerIDFromParam(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	o, err := h.uc.UpdateStatus(c.Context(), userID, offerID, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOfferResponse(o))
}

func offerIDFromParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid offer id", err)
	}
	return id, nil
}
