package models

import "time"

const (
	StoryStatusDraft         = "DRAFT"
	StoryStatusPendingReview = "PENDING_REVIEW"
	StoryStatusPublished     = "PUBLISHED"
	StoryStatusRejected      = "REJECTED"
	StoryStatusInternalOnly  = "INTERNAL_ONLY"
	StoryStatusArchived      = "ARCHIVED"
)

const (
	PublicationChoiceFullName             = "FULL_NAME"
	PublicationChoiceFirstNameOnly        = "FIRST_NAME_ONLY"
	PublicationChoiceFirstNameLastInitial = "FIRST_NAME_LAST_INITIAL"
	PublicationChoiceAnonymous            = "ANONYMOUS"
	PublicationChoiceInternalOnly         = "INTERNAL_ONLY"
)

// Story is a recovery submission. DisplayName is derived from
// PublicationChoice and SubmitterName and must never be set directly.
type Story struct {
	ID           uint   `gorm:"primaryKey"`
	PublicID     string `gorm:"uniqueIndex;not null"`
	AuthorUserID *uint  `gorm:"index"`
	Status       string `gorm:"not null;default:PENDING_REVIEW;index"`

	PublicationChoice string `gorm:"not null"`
	SubmitterName     string
	SubmitterPhone    string
	DisplayName       string `gorm:"not null"`

	Title             string `gorm:"not null"`
	MedicalCondition  string `gorm:"not null;index"`
	TreatmentCategory string `gorm:"not null;index"`
	TreatmentProcess  string `gorm:"not null"`
	Duration          string
	Outcome           string
	MessageToOthers   string

	ConsentTruthful bool `gorm:"not null"`
	ConsentPublish  bool `gorm:"not null"`

	SubmittedAt time.Time `gorm:"not null;index"`
	PublishedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
