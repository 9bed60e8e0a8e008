package models

import (
	"time"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	CandidateNew       CandidateStatus = "New"
	CandidateScreening CandidateStatus = "Screening"
	CandidateInterview CandidateStatus = "Interview"
	CandidateOffer     CandidateStatus = "Offer"
)

type Candidate struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string          `gorm:"type:text;not null" json:"name"`
	Role       string          `gorm:"type:text;not null" json:"role"`
	Experience int             `gorm:"not null" json:"experience"`
	Skills     []string        `gorm:"type:jsonb;serializer:json" json:"skills"`
	Location   string          `gorm:"type:text" json:"location"`
	Avatar     string          `gorm:"type:text" json:"avatar"`
	Status     CandidateStatus `gorm:"type:text;not null;default:'New'" json:"status"`
	MatchScore int             `json:"match_score"`
	Bio        string          `gorm:"type:text" json:"bio"`
	CreatedAt  time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateProfile is the read-only slice of a candidate that analysis
// prompts are built from. Callers hand it over already validated.
type CandidateProfile struct {
	Name       string
	Role       string
	Experience int
	Skills     []string
	Bio        string
}

func (c *Candidate) Profile() CandidateProfile {
	skills := make([]string, len(c.Skills))
	copy(skills, c.Skills)

	return CandidateProfile{
		Name:       c.Name,
		Role:       c.Role,
		Experience: c.Experience,
		Skills:     skills,
		Bio:        c.Bio,
	}
}
