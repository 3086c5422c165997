package db

import (
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) FindByID(reportID uint) (models.Report, error) {
	var report models.Report
	if err := repo.database.First(&report, reportID).Error; err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (repo *ReportRepository) Create(report *models.Report) error {
	return repo.database.Create(report).Error
}

func (repo *ReportRepository) UpdateStatus(reportID uint, status string) error {
	return repo.database.Model(&models.Report{}).Where("id = ?", reportID).Update("status", status).Error
}

func (repo *ReportRepository) ListByStatus(status string) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	query := repo.database.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
