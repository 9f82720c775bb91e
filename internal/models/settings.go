package models

import "time"

const (
	DefaultUserKeywordWeight  = 0.4
	DefaultUserSemanticWeight = 0.6
)

type UserConfig struct {
	UserID           string    `gorm:"type:text;primary_key" json:"user_id"`
	KeywordWeight    float64   `gorm:"not null;default:0.4" json:"keyword_weight"`
	SemanticWeight   float64   `gorm:"not null;default:0.6" json:"semantic_weight"`
	SignatureName    string    `gorm:"type:text" json:"signature_name"`
	SignatureRole    string    `gorm:"type:text" json:"signature_role"`
	SignatureCompany string    `gorm:"type:text" json:"signature_company"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (UserConfig) TableName() string {
	return "user_configs"
}
