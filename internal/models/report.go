package models

import "time"

const (
	ReportStatusOpen      = "OPEN"
	ReportStatusReviewing = "REVIEWING"
	ReportStatusClosed    = "CLOSED"
)

// Report flags a published story or an approved therapist. Its lifecycle is
// independent of the review workflow.
type Report struct {
	ID         uint   `gorm:"primaryKey"`
	EntityType string `gorm:"not null"`
	EntityID   string `gorm:"not null"`
	Reason     string `gorm:"not null"`
	Details    string
	Status     string `gorm:"not null;default:OPEN;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
