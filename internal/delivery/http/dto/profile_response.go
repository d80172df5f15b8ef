package dto

import (
	"time"

	"jobtrack/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID      uuid.UUID           `json:"user_id"`
	CVText      string              `json:"cv_text"`
	Preferences profile.Preferences `json:"preferences"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func NewProfileResponse(p profile.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		CVText:      p.CVText,
		Preferences: p.Preferences,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
