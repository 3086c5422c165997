package api

import (
	"errors"
	"time"

	"github.com/yuvalrn/hachlama/internal/db"
	"github.com/yuvalrn/hachlama/internal/i18n"
	"github.com/yuvalrn/hachlama/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName     = "hachlama_session"
	languageCookieName = "hachlama_lang"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	repos        *db.Repositories
	auth         *services.AuthService
	stories      *services.StoryService
	therapists   *services.TherapistService
	reports      *services.ReportService
	views        *services.ViewCache
	i18n         *i18n.Manager
	secretKey    []byte
	cookieSecure bool
}

func NewHandler(database *gorm.DB, secret string, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	repos := db.NewRepositories(database)
	views := services.NewViewCache()

	return &Handler{
		repos:        repos,
		auth:         services.NewAuthService(repos.Users),
		stories:      services.NewStoryService(repos.Stories, views),
		therapists:   services.NewTherapistService(repos.Therapists, views),
		reports:      services.NewReportService(repos.Reports),
		views:        views,
		i18n:         i18nManager,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
	}, nil
}

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type storyPayload struct {
	PublicationChoice string `json:"publication_choice" form:"publication_choice"`
	SubmitterName     string `json:"submitter_name" form:"submitter_name"`
	SubmitterPhone    string `json:"submitter_phone" form:"submitter_phone"`
	Title             string `json:"title" form:"title"`
	MedicalCondition  string `json:"medical_condition" form:"medical_condition"`
	TreatmentCategory string `json:"treatment_category" form:"treatment_category"`
	TreatmentProcess  string `json:"treatment_process" form:"treatment_process"`
	Duration          string `json:"duration" form:"duration"`
	Outcome           string `json:"outcome" form:"outcome"`
	MessageToOthers   string `json:"message_to_others" form:"message_to_others"`
	ConsentTruthful   bool   `json:"consent_truthful" form:"consent_truthful"`
	ConsentPublish    bool   `json:"consent_publish" form:"consent_publish"`
}

func (payload storyPayload) toInput() services.StoryInput {
	return services.StoryInput{
		PublicationChoice: payload.PublicationChoice,
		SubmitterName:     payload.SubmitterName,
		SubmitterPhone:    payload.SubmitterPhone,
		Title:             payload.Title,
		MedicalCondition:  payload.MedicalCondition,
		TreatmentCategory: payload.TreatmentCategory,
		TreatmentProcess:  payload.TreatmentProcess,
		Duration:          payload.Duration,
		Outcome:           payload.Outcome,
		MessageToOthers:   payload.MessageToOthers,
		ConsentTruthful:   payload.ConsentTruthful,
		ConsentPublish:    payload.ConsentPublish,
	}
}

type therapistPayload struct {
	FullName            string   `json:"full_name" form:"full_name"`
	Profession          string   `json:"profession" form:"profession"`
	City                string   `json:"city" form:"city"`
	ContactEmail        string   `json:"contact_email" form:"contact_email"`
	Phone               string   `json:"phone" form:"phone"`
	Specialties         []string `json:"specialties" form:"specialties"`
	Languages           []string `json:"languages" form:"languages"`
	EducationText       string   `json:"education_text" form:"education_text"`
	ApproachDescription string   `json:"approach_description" form:"approach_description"`
	Credo               string   `json:"credo" form:"credo"`
	ConsentJoin         bool     `json:"consent_join" form:"consent_join"`
}

func (payload therapistPayload) toInput() services.TherapistApplicationInput {
	return services.TherapistApplicationInput{
		FullName:            payload.FullName,
		Profession:          payload.Profession,
		City:                payload.City,
		ContactEmail:        payload.ContactEmail,
		Phone:               payload.Phone,
		Specialties:         payload.Specialties,
		Languages:           payload.Languages,
		EducationText:       payload.EducationText,
		ApproachDescription: payload.ApproachDescription,
		Credo:               payload.Credo,
		ConsentJoin:         payload.ConsentJoin,
	}
}

type statusPayload struct {
	Status string `json:"status" form:"status"`
	Notes  string `json:"notes" form:"notes"`
}

type reportPayload struct {
	EntityType string `json:"entity_type" form:"entity_type"`
	EntityID   string `json:"entity_id" form:"entity_id"`
	Reason     string `json:"reason" form:"reason"`
	Details    string `json:"details" form:"details"`
}
