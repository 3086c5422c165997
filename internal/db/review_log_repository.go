package db

import (
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

type ReviewLogRepository struct {
	database *gorm.DB
}

func NewReviewLogRepository(database *gorm.DB) *ReviewLogRepository {
	return &ReviewLogRepository{database: database}
}

func (repo *ReviewLogRepository) ListForEntity(entityType string, entityID uint) ([]models.ReviewLog, error) {
	entries := make([]models.ReviewLog, 0)
	if err := repo.database.
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ReviewLogRepository) CountForEntity(entityType string, entityID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ReviewLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
