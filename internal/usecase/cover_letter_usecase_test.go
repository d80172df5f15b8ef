package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"jobtrack/internal/domain/offer"
	"jobtrack/internal/domain/profile"

	"github.com/google/uuid"
)

func TestCoverLetterUsecase_Generate_OfferNotFound(t *testing.T) {
	uc := NewCoverLetterUsecase(&mockOfferRepo{err: offer.ErrNotFound}, mockProfileRepo{}, &stubClient{})

	_, err := uc.Generate(context.Background(), uuid.New(), uuid.New(), "")
	if !errors.Is(err, offer.ErrNotFound) {
		t.Fatalf("expected offer.ErrNotFound, got %v", err)
	}
}

func TestCoverLetterUsecase_Generate_ProfileIncomplete(t *testing.T) {
	uc := NewCoverLetterUsecase(
		&mockOfferRepo{offer: offer.JobOffer{CompanyName: "Acme"}},
		mockProfileRepo{profile: profile.UserProfile{CVText: ""}},
		&stubClient{},
	)

	_, err := uc.Generate(context.Background(), uuid.New(), uuid.New(), "")
	if !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}
}

func TestCoverLetterUsecase_Generate_PersistsAdviceAndNotes(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()

	storedAnalysis := offer.NewAnalysis(offer.JobAnalysis{
		PositioningStrategy: offer.PositioningStrategy{CoverLetterAngle: "fiabiliser le backend"},
	})
	repo := &mockOfferRepo{offer: offer.JobOffer{
		ID:             offerID,
		UserID:         userID,
		CompanyName:    "Acme",
		PositionTitle:  "Backend Intern",
		JobDescription: "desc",
		Analysis:       storedAnalysis,
	}}
	client := &stubClient{advice: offer.CoverLetterAdvice{
		AnglesCles:       []string{"angle un"},
		ConseilOuverture: "ouvrir fort",
	}}
	uc := NewCoverLetterUsecase(repo, mockProfileRepo{profile: profile.UserProfile{CVText: "cv"}}, client)

	advice, err := uc.Generate(context.Background(), userID, offerID, "insister sur le remote")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if advice.ConseilOuverture != "ouvrir fort" {
		t.Fatalf("unexpected advice: %+v", advice)
	}

	if repo.cover == nil {
		t.Fatalf("expected cover letter update")
	}
	if repo.cover.userID != userID || repo.cover.offerID != offerID {
		t.Fatalf("update targeted the wrong row: %+v", repo.cover)
	}
	if repo.cover.userNotes != "insister sur le remote" {
		t.Fatalf("expected notes persisted with the advice, got %q", repo.cover.userNotes)
	}

	var persisted offer.CoverLetterAdvice
	if err := json.Unmarshal([]byte(repo.cover.coverLetter), &persisted); err != nil {
		t.Fatalf("stored cover letter is not JSON: %v", err)
	}
	if persisted.ConseilOuverture != "ouvrir fort" {
		t.Fatalf("unexpected stored advice: %+v", persisted)
	}

	if client.adviceIn.ProfileAlignment == "" {
		t.Fatalf("expected alignment derived from the stored analysis")
	}
	if client.adviceIn.UserNotes != "insister sur le remote" {
		t.Fatalf("expected notes forwarded to the prompt, got %q", client.adviceIn.UserNotes)
	}
}

func TestCoverLetterUsecase_Generate_PersistenceFailureFailsOperation(t *testing.T) {
	repo := &mockOfferRepo{
		offer:    offer.JobOffer{CompanyName: "Acme", PositionTitle: "Backend", JobDescription: "desc"},
		coverErr: errors.New("connection reset"),
	}
	uc := NewCoverLetterUsecase(repo, mockProfileRepo{profile: profile.UserProfile{CVText: "cv"}}, &stubClient{})

	_, err := uc.Generate(context.Background(), uuid.New(), uuid.New(), "")
	if err == nil {
		t.Fatalf("expected error when persistence fails")
	}
}

func TestCoverLetterUsecase_Generate_NoAnalysisYieldsEmptyAlignment(t *testing.T) {
	repo := &mockOfferRepo{offer: offer.JobOffer{CompanyName: "Acme", PositionTitle: "Backend", JobDescription: "desc"}}
	client := &stubClient{}
	uc := NewCoverLetterUsecase(repo, mockProfileRepo{profile: profile.UserProfile{CVText: "cv"}}, client)

	if _, err := uc.Generate(context.Background(), uuid.New(), uuid.New(), ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if client.adviceIn.ProfileAlignment != "" {
		t.Fatalf("expected empty alignment without a stored analysis, got %q", client.adviceIn.ProfileAlignment)
	}
}
