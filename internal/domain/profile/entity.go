package profile

import (
	"time"

	"github.com/google/uuid"
)

type Preferences struct {
	RemoteWork         bool     `json:"remote_work"`
	SalaryExpectation  string   `json:"salary_expectation,omitempty"`
	TargetTechnologies []string `json:"target_technologies"`
	CareerGoals        string   `json:"career_goals,omitempty"`
}

// UserProfile holds the caller's CV text and search preferences, one row per
// user. CVText is free text; a JSON-structured CV is recommended but not
// enforced.
type UserProfile struct {
	UserID      uuid.UUID
	CVText      string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
