package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

const rejectedApplicationDefaultNotes = "Application rejected and deleted"

var (
	ErrTherapistNotFound       = errors.New("therapist not found")
	ErrUnknownTherapistStatus  = errors.New("unknown therapist status")
	ErrActiveApplicationExists = errors.New("active therapist application exists")
)

type TherapistWorkflowRepository interface {
	FindByPublicID(publicID string) (models.Therapist, error)
	Create(therapist *models.Therapist) error
	CountActiveByUserID(userID uint) (int64, error)
	ApproveAndPromoteOwner(therapistID uint, ownerUserID uint, entry *models.ReviewLog) error
	DeleteWithReviewLog(therapistID uint, entry *models.ReviewLog) error
	SuspendAndDemoteOwner(therapistID uint, ownerUserID uint, entry *models.ReviewLog) error
}

type TherapistService struct {
	therapists  TherapistWorkflowRepository
	revalidator Revalidator
}

func NewTherapistService(therapists TherapistWorkflowRepository, revalidator Revalidator) *TherapistService {
	return &TherapistService{therapists: therapists, revalidator: revalidator}
}

// SubmitApplication creates a PENDING application for the acting user.
// A user may hold at most one active (pending or approved) application;
// rejected applicants may apply again because rejection deletes the row.
func (service *TherapistService) SubmitApplication(actor *models.User, input TherapistApplicationInput) (models.Therapist, error) {
	if actor == nil {
		return models.Therapist{}, ErrUnauthorized
	}
	if err := ValidateTherapistApplication(&input); err != nil {
		return models.Therapist{}, err
	}

	active, err := service.therapists.CountActiveByUserID(actor.ID)
	if err != nil {
		return models.Therapist{}, err
	}
	if active > 0 {
		return models.Therapist{}, ErrActiveApplicationExists
	}

	therapist := models.Therapist{
		PublicID:            uuid.NewString(),
		UserID:              actor.ID,
		Status:              models.TherapistStatusPending,
		FullName:            input.FullName,
		Profession:          input.Profession,
		City:                input.City,
		ContactEmail:        input.ContactEmail,
		Phone:               input.Phone,
		Specialties:         input.Specialties,
		Languages:           input.Languages,
		EducationText:       input.EducationText,
		ApproachDescription: input.ApproachDescription,
		Credo:               input.Credo,
		ConsentJoin:         input.ConsentJoin,
	}
	if err := service.therapists.Create(&therapist); err != nil {
		return models.Therapist{}, err
	}

	service.revalidator.Invalidate(ViewAdminTherapists)
	return therapist, nil
}

// Decide records an admin decision on an application. All side effects of a
// decision (status write, owner role change, audit append, deletion) commit
// in one repository transaction. Re-deciding a reached status fails with
// ErrAlreadyDecided instead of re-running side effects.
func (service *TherapistService) Decide(actor *models.User, publicID string, status string, notes string) error {
	if !IsAdminUser(actor) {
		return ErrUnauthorized
	}

	switch status {
	case models.TherapistStatusApproved, models.TherapistStatusRejected, models.TherapistStatusSuspended:
	default:
		return ErrUnknownTherapistStatus
	}

	therapist, err := service.therapists.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTherapistNotFound
		}
		return err
	}

	if status == therapist.Status {
		return ErrAlreadyDecided
	}
	if !CanTransitionTherapist(therapist.Status, status) {
		return ErrInvalidTransition
	}

	entry := &models.ReviewLog{
		EntityType:  models.ReviewEntityTherapist,
		EntityID:    therapist.ID,
		AdminUserID: actor.ID,
		Decision:    TherapistDecisionForStatus(status),
		Notes:       strings.TrimSpace(notes),
		CreatedAt:   time.Now(),
	}

	switch status {
	case models.TherapistStatusApproved:
		err = service.therapists.ApproveAndPromoteOwner(therapist.ID, therapist.UserID, entry)
	case models.TherapistStatusRejected:
		if entry.Notes == "" {
			entry.Notes = rejectedApplicationDefaultNotes
		}
		err = service.therapists.DeleteWithReviewLog(therapist.ID, entry)
	case models.TherapistStatusSuspended:
		err = service.therapists.SuspendAndDemoteOwner(therapist.ID, therapist.UserID, entry)
	}
	if err != nil {
		return err
	}

	service.revalidator.Invalidate(ViewTherapists, ViewAdminTherapists, TherapistDetailView(therapist.PublicID))
	return nil
}
