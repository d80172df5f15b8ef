package usecase

import (
	"context"
	"fmt"
	"strings"

	"jobtrack/internal/domain/offer"

	"github.com/google/uuid"
)

type CreateOfferInput struct {
	CompanyName        string
	PositionTitle      string
	JobDescription     string
	JobURL             string
	Location           string
	CompanyDescription string
	Status             string
	TechStack          []string
	Analysis           *offer.JobAnalysis
	UserNotes          string
}

type OfferUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]offer.JobOffer, error)
	Get(ctx context.Context, userID, offerID uuid.UUID) (offer.JobOffer, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateOfferInput) (offer.JobOffer, error)
	UpdateStatus(ctx context.Context, userID, offerID uuid.UUID, status string) (offer.JobOffer, error)
}

type Offers struct {
	offers offer.Repository
}

func NewOfferUsecase(offers offer.Repository) *Offers {
	return &Offers{offers: offers}
}

func (u *Offers) List(ctx context.Context, userID uuid.UUID) ([]offer.JobOffer, error) {
	return u.offers.ListByUser(ctx, userID)
}

func (u *Offers) Get(ctx context.Context, userID, offerID uuid.UUID) (offer.JobOffer, error) {
	return u.offers.GetByID(ctx, userID, offerID)
}

func (u *Offers) Create(ctx context.Context, userID uuid.UUID, in CreateOfferInput) (offer.JobOffer, error) {
	if strings.TrimSpace(in.CompanyName) == "" ||
		strings.TrimSpace(in.PositionTitle) == "" ||
		strings.TrimSpace(in.JobDescription) == "" {
		return offer.JobOffer{}, fmt.Errorf("%w: company name, position title and job description are required", ErrInvalidInput)
	}

	status := offer.StatusNotSent
	if in.Status != "" {
		status = offer.Status(in.Status)
		if !status.IsValid() {
			return offer.JobOffer{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
		}
	}

	var analysis *offer.Analysis
	if in.Analysis != nil {
		analysis = offer.NewAnalysis(*in.Analysis)
	}

	return u.offers.Create(ctx, offer.JobOffer{
		UserID:             userID,
		CompanyName:        strings.TrimSpace(in.CompanyName),
		PositionTitle:      strings.TrimSpace(in.PositionTitle),
		JobDescription:     in.JobDescription,
		JobURL:             strings.TrimSpace(in.JobURL),
		Location:           strings.TrimSpace(in.Location),
		CompanyDescription: in.CompanyDescription,
		Status:             status,
		TechStack:          in.TechStack,
		Analysis:           analysis,
		UserNotes:          in.UserNotes,
	})
}

// UpdateStatus accepts any valid status value; transitions are user-driven and
// unconstrained.
func (u *Offers) UpdateStatus(ctx context.Context, userID, offerID uuid.UUID, status string) (offer.JobOffer, error) {
	st := offer.Status(status)
	if !st.IsValid() {
		return offer.JobOffer{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return u.offers.UpdateStatus(ctx, userID, offerID, st)
}
