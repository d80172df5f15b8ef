package offer

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound covers both a missing row and a row owned by another user; the
// two cases must be indistinguishable to the caller.
var ErrNotFound = errors.New("offer not found")

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]JobOffer, error)
	GetByID(ctx context.Context, userID, offerID uuid.UUID) (JobOffer, error)
	Create(ctx context.Context, o JobOffer) (JobOffer, error)
	UpdateStatus(ctx context.Context, userID, offerID uuid.UUID, status Status) (JobOffer, error)
	UpdateCoverLetter(ctx context.Context, userID, offerID uuid.UUID, coverLetter, userNotes string) (JobOffer, error)
}
