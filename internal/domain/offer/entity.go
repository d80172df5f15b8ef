package offer

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotSent   Status = "not_sent"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNotSent, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// JobOffer is one user's tracked application to one position. CoverLetter holds
// either a JSON-serialized CoverLetterAdvice or legacy plain text; decode it
// with DecodeCoverLetter.
type JobOffer struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CompanyName        string
	PositionTitle      string
	JobDescription     string
	JobURL             string
	Location           string
	CompanyDescription string
	Status             Status
	TechStack          []string
	Analysis           *Analysis
	CoverLetter        string
	UserNotes          string
	ApplicationDate    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
