package models

import "time"

const (
	TherapistStatusPending   = "PENDING"
	TherapistStatusApproved  = "APPROVED"
	TherapistStatusRejected  = "REJECTED"
	TherapistStatusSuspended = "SUSPENDED"
)

// Therapist is a visibility application owned by a User. Approval upgrades
// the owner to RoleTherapist; rejection deletes the record permanently.
type Therapist struct {
	ID       uint   `gorm:"primaryKey"`
	PublicID string `gorm:"uniqueIndex;not null"`
	UserID   uint   `gorm:"not null;index"`
	Status   string `gorm:"not null;default:PENDING;index"`

	FullName     string `gorm:"not null"`
	Profession   string `gorm:"not null;index"`
	City         string `gorm:"not null;index"`
	ContactEmail string `gorm:"not null"`
	Phone        string

	Specialties []string `gorm:"serializer:json"`
	Languages   []string `gorm:"serializer:json"`

	EducationText       string
	ApproachDescription string `gorm:"not null"`
	Credo               string

	ConsentJoin bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
