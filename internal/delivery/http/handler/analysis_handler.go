package handler

import (
	"strings"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	analysis    usecase.AnalysisUsecase
	coverLetter usecase.CoverLetterUsecase
}

type extractJobInfoRequest struct {
	JobDescription string `json:"job_description"`
}

type analyzeRequest struct {
	JobDescription string `json:"job_description"`
	CompanyName    string `json:"company_name"`
	PositionTitle  string `json:"position_title"`
	Location       string `json:"location"`
}

type generateCoverLetterRequest struct {
	OfferID   string `json:"offer_id"`
	UserNotes string `json:"user_notes"`
}

func NewAnalysisHandler(analysis usecase.AnalysisUsecase, coverLetter usecase.CoverLetterUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, coverLetter: coverLetter}
}

// RegisterPublicRoutes mounts the endpoints that work without a session.
func (h *AnalysisHandler) RegisterPublicRoutes(r fiber.Router) {
	r.Post("/extract-job-info", h.ExtractJobInfo)
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze", h.Analyze)
	r.Post("/generate-cover-letter", h.GenerateCoverLetter)
}

func (h *AnalysisHandler) ExtractJobInfo(c fiber.Ctx) error {
	var req extractJobInfoRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "job_description is required", nil)
	}

	info, err := h.analysis.ExtractJobInfo(c.Context(), req.JobDescription)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, info)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	analysis, err := h.analysis.Analyze(c.Context(), userID, usecase.AnalyzeParams{
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
		PositionTitle:  req.PositionTitle,
		Location:       req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}

func (h *AnalysisHandler) GenerateCoverLetter(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req generateCoverLetterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}
	offerID, err := uuid.Parse(strings.TrimSpace(req.OfferID))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "offer_id is required", err)
	}

	advice, err := h.coverLetter.Generate(c.Context(), userID, offerID, req.UserNotes)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"cover_letter_advice": advice,
	})
}
