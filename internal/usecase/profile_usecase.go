package usecase

import (
	"context"
	"errors"

	"jobtrack/internal/domain/profile"

	"github.com/google/uuid"
)

type UpsertProfileInput struct {
	CVText      string
	Preferences profile.Preferences
}

type ProfileUsecase interface {
	// Get returns nil without error when the caller has no profile yet.
	Get(ctx context.Context, userID uuid.UUID) (*profile.UserProfile, error)
	Upsert(ctx context.Context, userID uuid.UUID, in UpsertProfileInput) (profile.UserProfile, error)
}

type Profile struct {
	profiles profile.Repository
}

func NewProfileUsecase(profiles profile.Repository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (*profile.UserProfile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (u *Profile) Upsert(ctx context.Context, userID uuid.UUID, in UpsertProfileInput) (profile.UserProfile, error) {
	if in.Preferences.TargetTechnologies == nil {
		in.Preferences.TargetTechnologies = []string{}
	}
	return u.profiles.Upsert(ctx, profile.UserProfile{
		UserID:      userID,
		CVText:      in.CVText,
		Preferences: in.Preferences,
	})
}
