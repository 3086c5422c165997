package models

import "time"

const (
	ReviewEntityStory     = "STORY"
	ReviewEntityTherapist = "THERAPIST"
)

const (
	DecisionApproved         = "APPROVED"
	DecisionRejected         = "REJECTED"
	DecisionChangesRequested = "CHANGES_REQUESTED"
)

// ReviewLog is an append-only audit record of an admin decision.
// Rows are never updated or deleted.
type ReviewLog struct {
	ID          uint      `gorm:"primaryKey"`
	EntityType  string    `gorm:"not null;index:idx_review_logs_entity"`
	EntityID    uint      `gorm:"not null;index:idx_review_logs_entity"`
	AdminUserID uint      `gorm:"not null"`
	Decision    string    `gorm:"not null"`
	Notes       string
	CreatedAt   time.Time `gorm:"not null"`
}
