package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talentfit/resume-scorer/internal/models"
)

type UserConfigRepository interface {
	GetOrCreate(userID string) (*models.UserConfig, error)
	Upsert(cfg *models.UserConfig) error
}

type userConfigRepository struct {
	db *gorm.DB
}

func NewUserConfigRepository(db *gorm.DB) UserConfigRepository {
	return &userConfigRepository{db: db}
}

// GetOrCreate implements UserConfigRepository. A first read auto-creates
// the row with default weights and an empty signature.
func (r *userConfigRepository) GetOrCreate(userID string) (*models.UserConfig, error) {
	var cfg models.UserConfig
	err := r.db.Where("user_id = ?", userID).First(&cfg).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	cfg = models.UserConfig{
		UserID:         userID,
		KeywordWeight:  models.DefaultUserKeywordWeight,
		SemanticWeight: models.DefaultUserSemanticWeight,
	}
	if err := r.db.Create(&cfg).Error; err != nil {
		return nil, fmt.Errorf("failed to create default user config: %w", err)
	}

	return &cfg, nil
}

// Upsert implements UserConfigRepository.
func (r *userConfigRepository) Upsert(cfg *models.UserConfig) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"keyword_weight", "semantic_weight", "signature_name", "signature_role", "signature_company", "updated_at"}),
	}).Create(cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user config: %w", err)
	}

	return nil
}
