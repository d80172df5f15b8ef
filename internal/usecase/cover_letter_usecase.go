package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobtrack/internal/domain/offer"
	"jobtrack/internal/domain/profile"
	"jobtrack/internal/llm"

	"github.com/google/uuid"
)

type CoverLetterUsecase interface {
	Generate(ctx context.Context, userID, offerID uuid.UUID, userNotes string) (offer.CoverLetterAdvice, error)
}

type CoverLetter struct {
	offers   offer.Repository
	profiles profile.Repository
	client   AnalysisClient
}

func NewCoverLetterUsecase(offers offer.Repository, profiles profile.Repository, client AnalysisClient) *CoverLetter {
	return &CoverLetter{offers: offers, profiles: profiles, client: client}
}

// Generate produces cover-letter advice for a stored offer and persists the
// advice together with the notes in one update. If persistence fails the
// operation fails even though the completion call succeeded; re-triggering is
// safe because the advice is regenerated and overwritten.
func (u *CoverLetter) Generate(ctx context.Context, userID, offerID uuid.UUID, userNotes string) (offer.CoverLetterAdvice, error) {
	o, err := u.offers.GetByID(ctx, userID, offerID)
	if err != nil {
		return offer.CoverLetterAdvice{}, err
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return offer.CoverLetterAdvice{}, ErrProfileIncomplete
		}
		return offer.CoverLetterAdvice{}, err
	}
	if strings.TrimSpace(p.CVText) == "" {
		return offer.CoverLetterAdvice{}, ErrProfileIncomplete
	}

	advice, err := u.client.CoverLetterAdvice(ctx, llm.AdviceInput{
		CVText:             p.CVText,
		CompanyName:        o.CompanyName,
		PositionTitle:      o.PositionTitle,
		Location:           o.Location,
		CompanyDescription: o.CompanyDescription,
		JobDescription:     o.JobDescription,
		UserNotes:          userNotes,
		ProfileAlignment:   o.Analysis.ProfileAlignment(),
	})
	if err != nil {
		return offer.CoverLetterAdvice{}, err
	}

	serialized, err := json.Marshal(advice)
	if err != nil {
		return offer.CoverLetterAdvice{}, fmt.Errorf("marshal advice: %w", err)
	}
	if _, err := u.offers.UpdateCoverLetter(ctx, userID, offerID, string(serialized), userNotes); err != nil {
		return offer.CoverLetterAdvice{}, err
	}

	return advice, nil
}
