package dto

import (
	"time"

	"jobtrack/internal/domain/offer"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID                 uuid.UUID       `json:"id"`
	CompanyName        string          `json:"company_name"`
	PositionTitle      string          `json:"position_title"`
	JobDescription     string          `json:"job_description"`
	JobURL             string          `json:"job_url,omitempty"`
	Location           string          `json:"location,omitempty"`
	CompanyDescription string          `json:"company_description,omitempty"`
	Status             string          `json:"status"`
	TechStack          []string        `json:"tech_stack"`
	Analysis           *offer.Analysis `json:"analysis,omitempty"`
	// AnalysisHasVerdict lets the view decide between rendering strategic
	// sections and showing a re-analyze prompt for legacy analyses.
	AnalysisHasVerdict bool             `json:"analysis_has_verdict"`
	CoverLetter        *CoverLetterView `json:"cover_letter,omitempty"`
	UserNotes          string           `json:"user_notes,omitempty"`
	ApplicationDate    string           `json:"application_date"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CoverLetterView is the decoded cover_letter field: structured advice when
// the stored value parses as JSON, the raw string otherwise.
type CoverLetterView struct {
	Advice     *offer.CoverLetterAdvice `json:"advice,omitempty"`
	LegacyText string                   `json:"legacy_text,omitempty"`
}

func NewOfferResponse(o offer.JobOffer) OfferResponse {
	res := OfferResponse{
		ID:                 o.ID,
		CompanyName:        o.CompanyName,
		PositionTitle:      o.PositionTitle,
		JobDescription:     o.JobDescription,
		JobURL:             o.JobURL,
		Location:           o.Location,
		CompanyDescription: o.CompanyDescription,
		Status:             string(o.Status),
		TechStack:          o.TechStack,
		Analysis:           o.Analysis,
		AnalysisHasVerdict: o.Analysis.HasVerdict(),
		UserNotes:          o.UserNotes,
		ApplicationDate:    o.ApplicationDate.Format("2006-01-02"),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if res.TechStack == nil {
		res.TechStack = []string{}
	}
	if cl := offer.DecodeCoverLetter(o.CoverLetter); !cl.IsZero() {
		res.CoverLetter = &CoverLetterView{Advice: cl.Advice, LegacyText: cl.LegacyText}
	}
	return res
}

func NewOfferListResponse(offers []offer.JobOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, NewOfferResponse(o))
	}
	return out
}
