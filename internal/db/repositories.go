package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Therapists *TherapistRepository
	Stories    *StoryRepository
	ReviewLogs *ReviewLogRepository
	Reports    *ReportRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Therapists: NewTherapistRepository(database),
		Stories:    NewStoryRepository(database),
		ReviewLogs: NewReviewLogRepository(database),
		Reports:    NewReportRepository(database),
	}
}
