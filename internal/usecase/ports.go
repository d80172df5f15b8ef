package usecase

import (
	"context"
	"errors"

	"jobtrack/internal/domain/offer"
	"jobtrack/internal/llm"

	"github.com/google/uuid"
)

// Shared sentinels; handlers map these onto the HTTP error taxonomy.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrProfileIncomplete = errors.New("profile cv text missing")
	ErrInternal          = errors.New("internal error")
)

// AnalysisClient is the slice of the llm client the usecases consume; tests
// substitute a stub.
type AnalysisClient interface {
	ExtractJobInfo(ctx context.Context, jobDescription string) (llm.JobInfoExtraction, error)
	AnalyzeJob(ctx context.Context, in llm.AnalyzeInput) (offer.JobAnalysis, error)
	CoverLetterAdvice(ctx context.Context, in llm.AdviceInput) (offer.CoverLetterAdvice, error)
}

// SessionStore tracks outstanding refresh tokens. IsActive's second return is
// false when the store cannot answer (redis down); callers then fall back to
// stateless token validation.
type SessionStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	IsActive(ctx context.Context, token string, userID uuid.UUID) (active, known bool)
	Revoke(ctx context.Context, token string) error
}
