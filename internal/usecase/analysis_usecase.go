package usecase

import (
	"context"
	"errors"
	"strings"

	"jobtrack/internal/domain/offer"
	"jobtrack/internal/domain/profile"
	"jobtrack/internal/llm"

	"github.com/google/uuid"
)

type AnalyzeParams struct {
	JobDescription string
	CompanyName    string
	PositionTitle  string
	Location       string
}

type AnalysisUsecase interface {
	ExtractJobInfo(ctx context.Context, jobDescription string) (llm.JobInfoExtraction, error)
	Analyze(ctx context.Context, userID uuid.UUID, in AnalyzeParams) (offer.JobAnalysis, error)
}

type Analysis struct {
	profiles profile.Repository
	client   AnalysisClient
}

func NewAnalysisUsecase(profiles profile.Repository, client AnalysisClient) *Analysis {
	return &Analysis{profiles: profiles, client: client}
}

func (u *Analysis) ExtractJobInfo(ctx context.Context, jobDescription string) (llm.JobInfoExtraction, error) {
	return u.client.ExtractJobInfo(ctx, jobDescription)
}

// Analyze runs the strategic analysis against the caller's stored CV. It never
// creates or mutates an offer; saving the result is a separate user action.
func (u *Analysis) Analyze(ctx context.Context, userID uuid.UUID, in AnalyzeParams) (offer.JobAnalysis, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return offer.JobAnalysis{}, ErrProfileIncomplete
		}
		return offer.JobAnalysis{}, err
	}
	if strings.TrimSpace(p.CVText) == "" {
		return offer.JobAnalysis{}, ErrProfileIncomplete
	}

	return u.client.AnalyzeJob(ctx, llm.AnalyzeInput{
		CVText:         p.CVText,
		JobDescription: in.JobDescription,
		CompanyName:    in.CompanyName,
		PositionTitle:  in.PositionTitle,
		Location:       in.Location,
	})
}
