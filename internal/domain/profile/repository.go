package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (UserProfile, error)
	Upsert(ctx context.Context, p UserProfile) (UserProfile, error)
}
