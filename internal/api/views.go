package api

import (
	"time"

	"github.com/yuvalrn/hachlama/internal/models"
)

// Public views expose only what the site renders; submitter contact details
// and internal row ids stay out.
type publicStoryView struct {
	PublicID          string     `json:"public_id"`
	DisplayName       string     `json:"display_name"`
	Title             string     `json:"title"`
	MedicalCondition  string     `json:"medical_condition"`
	TreatmentCategory string     `json:"treatment_category"`
	TreatmentProcess  string     `json:"treatment_process"`
	Duration          string     `json:"duration,omitempty"`
	Outcome           string     `json:"outcome,omitempty"`
	MessageToOthers   string     `json:"message_to_others,omitempty"`
	PublishedAt       *time.Time `json:"published_at,omitempty"`
}

func buildPublicStoryView(story models.Story) publicStoryView {
	return publicStoryView{
		PublicID:          story.PublicID,
		DisplayName:       story.DisplayName,
		Title:             story.Title,
		MedicalCondition:  story.MedicalCondition,
		TreatmentCategory: story.TreatmentCategory,
		TreatmentProcess:  story.TreatmentProcess,
		Duration:          story.Duration,
		Outcome:           story.Outcome,
		MessageToOthers:   story.MessageToOthers,
		PublishedAt:       story.PublishedAt,
	}
}

func buildPublicStoryViews(stories []models.Story) []publicStoryView {
	views := make([]publicStoryView, 0, len(stories))
	for _, story := range stories {
		views = append(views, buildPublicStoryView(story))
	}
	return views
}

// ownerStoryView is what authors and admins see: moderation state plus the
// submitted raw fields.
type ownerStoryView struct {
	publicStoryView
	Status            string    `json:"status"`
	PublicationChoice string    `json:"publication_choice"`
	SubmitterName     string    `json:"submitter_name,omitempty"`
	SubmitterPhone    string    `json:"submitter_phone,omitempty"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

func buildOwnerStoryView(story models.Story) ownerStoryView {
	return ownerStoryView{
		publicStoryView:   buildPublicStoryView(story),
		Status:            story.Status,
		PublicationChoice: story.PublicationChoice,
		SubmitterName:     story.SubmitterName,
		SubmitterPhone:    story.SubmitterPhone,
		SubmittedAt:       story.SubmittedAt,
	}
}

func buildOwnerStoryViews(stories []models.Story) []ownerStoryView {
	views := make([]ownerStoryView, 0, len(stories))
	for _, story := range stories {
		views = append(views, buildOwnerStoryView(story))
	}
	return views
}

type publicTherapistView struct {
	PublicID            string   `json:"public_id"`
	FullName            string   `json:"full_name"`
	Profession          string   `json:"profession"`
	City                string   `json:"city"`
	ContactEmail        string   `json:"contact_email"`
	Phone               string   `json:"phone,omitempty"`
	Specialties         []string `json:"specialties"`
	Languages           []string `json:"languages"`
	EducationText       string   `json:"education_text,omitempty"`
	ApproachDescription string   `json:"approach_description"`
	Credo               string   `json:"credo,omitempty"`
}

func buildPublicTherapistView(therapist models.Therapist) publicTherapistView {
	return publicTherapistView{
		PublicID:            therapist.PublicID,
		FullName:            therapist.FullName,
		Profession:          therapist.Profession,
		City:                therapist.City,
		ContactEmail:        therapist.ContactEmail,
		Phone:               therapist.Phone,
		Specialties:         therapist.Specialties,
		Languages:           therapist.Languages,
		EducationText:       therapist.EducationText,
		ApproachDescription: therapist.ApproachDescription,
		Credo:               therapist.Credo,
	}
}

func buildPublicTherapistViews(therapists []models.Therapist) []publicTherapistView {
	views := make([]publicTherapistView, 0, len(therapists))
	for _, therapist := range therapists {
		views = append(views, buildPublicTherapistView(therapist))
	}
	return views
}

// ownerTherapistView is what an applicant sees of their own application.
type ownerTherapistView struct {
	publicTherapistView
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func buildOwnerTherapistView(therapist models.Therapist) ownerTherapistView {
	return ownerTherapistView{
		publicTherapistView: buildPublicTherapistView(therapist),
		Status:              therapist.Status,
		CreatedAt:           therapist.CreatedAt,
	}
}

// Admin views carry the internal row id: it is the key for the review-log
// history, and for rejected therapists it is the only handle that survives
// the row deletion.
type adminTherapistView struct {
	publicTherapistView
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func buildAdminTherapistView(therapist models.Therapist) adminTherapistView {
	return adminTherapistView{
		publicTherapistView: buildPublicTherapistView(therapist),
		ID:                  therapist.ID,
		Status:              therapist.Status,
		UserID:              therapist.UserID,
		CreatedAt:           therapist.CreatedAt,
	}
}

func buildAdminTherapistViews(therapists []models.Therapist) []adminTherapistView {
	views := make([]adminTherapistView, 0, len(therapists))
	for _, therapist := range therapists {
		views = append(views, buildAdminTherapistView(therapist))
	}
	return views
}

type adminStoryView struct {
	ownerStoryView
	ID uint `json:"id"`
}

func buildAdminStoryView(story models.Story) adminStoryView {
	return adminStoryView{
		ownerStoryView: buildOwnerStoryView(story),
		ID:             story.ID,
	}
}

func buildAdminStoryViews(stories []models.Story) []adminStoryView {
	views := make([]adminStoryView, 0, len(stories))
	for _, story := range stories {
		views = append(views, buildAdminStoryView(story))
	}
	return views
}

type reportView struct {
	ID         uint      `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Reason     string    `json:"reason"`
	Details    string    `json:"details,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func buildReportViews(reports []models.Report) []reportView {
	views := make([]reportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, reportView{
			ID:         report.ID,
			EntityType: report.EntityType,
			EntityID:   report.EntityID,
			Reason:     report.Reason,
			Details:    report.Details,
			Status:     report.Status,
			CreatedAt:  report.CreatedAt,
		})
	}
	return views
}

type reviewLogView struct {
	ID          uint      `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityID    uint      `json:"entity_id"`
	AdminUserID uint      `json:"admin_user_id"`
	Decision    string    `json:"decision"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func buildReviewLogViews(entries []models.ReviewLog) []reviewLogView {
	views := make([]reviewLogView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, reviewLogView{
			ID:          entry.ID,
			EntityType:  entry.EntityType,
			EntityID:    entry.EntityID,
			AdminUserID: entry.AdminUserID,
			Decision:    entry.Decision,
			Notes:       entry.Notes,
			CreatedAt:   entry.CreatedAt,
		})
	}
	return views
}
