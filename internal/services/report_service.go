package services

import (
	"errors"
	"strings"

	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound          = errors.New("report not found")
	ErrReportEntityTypeInvalid = errors.New("report entity type invalid")
	ErrReportEntityRequired    = errors.New("report entity id required")
	ErrReportReasonRequired    = errors.New("report reason required")
	ErrUnknownReportStatus     = errors.New("unknown report status")
)

// Report lifecycle is independent of the review workflow: OPEN may move to
// REVIEWING or straight to CLOSED, REVIEWING only to CLOSED.
var reportTransitions = map[string][]string{
	models.ReportStatusOpen:      {models.ReportStatusReviewing, models.ReportStatusClosed},
	models.ReportStatusReviewing: {models.ReportStatusClosed},
}

type ReportInput struct {
	EntityType string
	EntityID   string
	Reason     string
	Details    string
}

type ReportWorkflowRepository interface {
	FindByID(reportID uint) (models.Report, error)
	Create(report *models.Report) error
	UpdateStatus(reportID uint, status string) error
}

type ReportService struct {
	reports ReportWorkflowRepository
}

func NewReportService(reports ReportWorkflowRepository) *ReportService {
	return &ReportService{reports: reports}
}

// Submit accepts a flag from anyone, authenticated or not. The referenced
// entity is recorded by public id and type tag; it is not dereferenced here.
func (service *ReportService) Submit(input ReportInput) (models.Report, error) {
	input.EntityID = strings.TrimSpace(input.EntityID)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Details = strings.TrimSpace(input.Details)

	if input.EntityType != models.ReviewEntityStory && input.EntityType != models.ReviewEntityTherapist {
		return models.Report{}, ErrReportEntityTypeInvalid
	}
	if input.EntityID == "" {
		return models.Report{}, ErrReportEntityRequired
	}
	if input.Reason == "" {
		return models.Report{}, ErrReportReasonRequired
	}

	report := models.Report{
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Reason:     input.Reason,
		Details:    input.Details,
		Status:     models.ReportStatusOpen,
	}
	if err := service.reports.Create(&report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (service *ReportService) UpdateStatus(actor *models.User, reportID uint, status string) error {
	if !IsAdminUser(actor) {
		return ErrUnauthorized
	}

	switch status {
	case models.ReportStatusOpen, models.ReportStatusReviewing, models.ReportStatusClosed:
	default:
		return ErrUnknownReportStatus
	}

	report, err := service.reports.FindByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}

	if !transitionAllowed(reportTransitions, report.Status, status) {
		return ErrInvalidTransition
	}

	return service.reports.UpdateStatus(report.ID, status)
}
