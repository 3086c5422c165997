package db

import (
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

type TherapistRepository struct {
	database *gorm.DB
}

func NewTherapistRepository(database *gorm.DB) *TherapistRepository {
	return &TherapistRepository{database: database}
}

func (repo *TherapistRepository) FindByID(therapistID uint) (models.Therapist, error) {
	var therapist models.Therapist
	if err := repo.database.First(&therapist, therapistID).Error; err != nil {
		return models.Therapist{}, err
	}
	return therapist, nil
}

func (repo *TherapistRepository) FindByPublicID(publicID string) (models.Therapist, error) {
	var therapist models.Therapist
	if err := repo.database.Where("public_id = ?", publicID).First(&therapist).Error; err != nil {
		return models.Therapist{}, err
	}
	return therapist, nil
}

func (repo *TherapistRepository) FindLatestByUserID(userID uint) (models.Therapist, error) {
	var therapist models.Therapist
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&therapist).Error; err != nil {
		return models.Therapist{}, err
	}
	return therapist, nil
}

func (repo *TherapistRepository) Create(therapist *models.Therapist) error {
	return repo.database.Create(therapist).Error
}

func (repo *TherapistRepository) CountActiveByUserID(userID uint) (int64, error) {
	var matched int64
	if err := repo.database.Model(&models.Therapist{}).
		Where("user_id = ? AND status IN ?", userID, []string{
			models.TherapistStatusPending,
			models.TherapistStatusApproved,
		}).
		Count(&matched).Error; err != nil {
		return 0, err
	}
	return matched, nil
}

func (repo *TherapistRepository) ListByStatus(status string) ([]models.Therapist, error) {
	therapists := make([]models.Therapist, 0)
	query := repo.database.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

func (repo *TherapistRepository) ListApproved(profession string, city string) ([]models.Therapist, error) {
	therapists := make([]models.Therapist, 0)
	query := repo.database.
		Where("status = ?", models.TherapistStatusApproved).
		Order("full_name ASC")
	if profession != "" {
		query = query.Where("profession = ?", profession)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if err := query.Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

// ApproveAndPromoteOwner applies an approval atomically: status write, owner
// role upgrade and audit append commit together or not at all. A missing
// owner row skips the promotion without failing the approval.
func (repo *TherapistRepository) ApproveAndPromoteOwner(therapistID uint, ownerUserID uint, entry *models.ReviewLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Therapist{}).
			Where("id = ?", therapistID).
			Update("status", models.TherapistStatusApproved).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", ownerUserID).
			Update("role", models.RoleTherapist).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

// DeleteWithReviewLog removes a rejected application and appends the audit
// entry in the same transaction, delete first.
func (repo *TherapistRepository) DeleteWithReviewLog(therapistID uint, entry *models.ReviewLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Therapist{}, therapistID).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

// SuspendAndDemoteOwner suspends an approved therapist and returns the owner
// to the basic role, with the audit entry in the same transaction.
func (repo *TherapistRepository) SuspendAndDemoteOwner(therapistID uint, ownerUserID uint, entry *models.ReviewLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Therapist{}).
			Where("id = ?", therapistID).
			Update("status", models.TherapistStatusSuspended).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", ownerUserID).
			Update("role", models.RoleBasic).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}
