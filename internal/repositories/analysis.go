package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"talentfit/resume-scorer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindRecentByUser(userID string, limit int) ([]models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis record: %w", err)
	}

	return nil
}

// FindRecentByUser implements AnalysisRepository.
func (r *analysisRepository) FindRecentByUser(userID string, limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}

	return analyses, nil
}
