package db

import (
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

type StoryRepository struct {
	database *gorm.DB
}

func NewStoryRepository(database *gorm.DB) *StoryRepository {
	return &StoryRepository{database: database}
}

func (repo *StoryRepository) FindByID(storyID uint) (models.Story, error) {
	var story models.Story
	if err := repo.database.First(&story, storyID).Error; err != nil {
		return models.Story{}, err
	}
	return story, nil
}

func (repo *StoryRepository) FindByPublicID(publicID string) (models.Story, error) {
	var story models.Story
	if err := repo.database.Where("public_id = ?", publicID).First(&story).Error; err != nil {
		return models.Story{}, err
	}
	return story, nil
}

func (repo *StoryRepository) Create(story *models.Story) error {
	return repo.database.Create(story).Error
}

func (repo *StoryRepository) Save(story *models.Story) error {
	return repo.database.Save(story).Error
}

func (repo *StoryRepository) DeleteByID(storyID uint) error {
	return repo.database.Delete(&models.Story{}, storyID).Error
}

func (repo *StoryRepository) ListPublished(condition string, category string) ([]models.Story, error) {
	stories := make([]models.Story, 0)
	query := repo.database.
		Where("status = ?", models.StoryStatusPublished).
		Order("published_at DESC")
	if condition != "" {
		query = query.Where("medical_condition = ?", condition)
	}
	if category != "" {
		query = query.Where("treatment_category = ?", category)
	}
	if err := query.Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (repo *StoryRepository) ListByAuthor(userID uint) ([]models.Story, error) {
	stories := make([]models.Story, 0)
	if err := repo.database.
		Where("author_user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (repo *StoryRepository) ListByStatus(status string) ([]models.Story, error) {
	stories := make([]models.Story, 0)
	query := repo.database.Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// UpdateStatusWithReviewLog applies a status transition and appends the audit
// entry in one transaction.
func (repo *StoryRepository) UpdateStatusWithReviewLog(storyID uint, updates map[string]any, entry *models.ReviewLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Story{}).
			Where("id = ?", storyID).
			Updates(updates).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}
