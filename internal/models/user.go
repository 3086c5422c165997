package models

import "time"

const (
	RoleBasic     = "BASIC"
	RoleTherapist = "THERAPIST"
	RoleAdmin     = "ADMIN"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:BASIC"`
	CreatedAt    time.Time `gorm:"not null"`
}
