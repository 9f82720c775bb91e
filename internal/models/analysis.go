package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is one row of scoring history: a single /analyze request.
type Analysis struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       string    `gorm:"type:text;index" json:"user_id,omitempty"`
	JobSummary   string    `gorm:"type:text" json:"job_summary"`
	ResumeCount  int       `gorm:"not null" json:"resume_count"`
	TopScore     float64   `json:"top_score"`
	TopCandidate string    `gorm:"type:text" json:"top_candidate"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
