package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

var (
	ErrStoryNotFound      = errors.New("story not found")
	ErrUnknownStoryStatus = errors.New("unknown story status")
)

type StoryWorkflowRepository interface {
	FindByPublicID(publicID string) (models.Story, error)
	Create(story *models.Story) error
	Save(story *models.Story) error
	DeleteByID(storyID uint) error
	UpdateStatusWithReviewLog(storyID uint, updates map[string]any, entry *models.ReviewLog) error
}

type StoryService struct {
	stories     StoryWorkflowRepository
	revalidator Revalidator
}

func NewStoryService(stories StoryWorkflowRepository, revalidator Revalidator) *StoryService {
	return &StoryService{stories: stories, revalidator: revalidator}
}

// Submit creates a story in PENDING_REVIEW for the acting user. Publication
// happens only through an admin status update.
func (service *StoryService) Submit(actor *models.User, input StoryInput) (models.Story, error) {
	if actor == nil {
		return models.Story{}, ErrUnauthorized
	}
	if err := ValidateStoryInput(&input); err != nil {
		return models.Story{}, err
	}

	displayName, err := ComputeDisplayName(input.PublicationChoice, input.SubmitterName)
	if err != nil {
		return models.Story{}, err
	}

	authorID := actor.ID
	story := models.Story{
		PublicID:          uuid.NewString(),
		AuthorUserID:      &authorID,
		Status:            models.StoryStatusPendingReview,
		PublicationChoice: input.PublicationChoice,
		SubmitterName:     input.SubmitterName,
		SubmitterPhone:    input.SubmitterPhone,
		DisplayName:       displayName,
		Title:             input.Title,
		MedicalCondition:  input.MedicalCondition,
		TreatmentCategory: input.TreatmentCategory,
		TreatmentProcess:  input.TreatmentProcess,
		Duration:          input.Duration,
		Outcome:           input.Outcome,
		MessageToOthers:   input.MessageToOthers,
		ConsentTruthful:   input.ConsentTruthful,
		ConsentPublish:    input.ConsentPublish,
		SubmittedAt:       time.Now(),
	}
	if err := service.stories.Create(&story); err != nil {
		return models.Story{}, err
	}

	service.revalidator.Invalidate(ViewAdminStories)
	return story, nil
}

// Update edits story content. Allowed for the author and for admins. The
// display name is recomputed from the submitted choice and name; it is never
// accepted from input.
func (service *StoryService) Update(actor *models.User, publicID string, input StoryInput) (models.Story, error) {
	story, err := service.stories.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Story{}, ErrStoryNotFound
		}
		return models.Story{}, err
	}
	if !CanEditStory(actor, &story) {
		return models.Story{}, ErrUnauthorized
	}
	if err := ValidateStoryInput(&input); err != nil {
		return models.Story{}, err
	}

	displayName, err := ComputeDisplayName(input.PublicationChoice, input.SubmitterName)
	if err != nil {
		return models.Story{}, err
	}

	story.PublicationChoice = input.PublicationChoice
	story.SubmitterName = input.SubmitterName
	story.SubmitterPhone = input.SubmitterPhone
	story.DisplayName = displayName
	story.Title = input.Title
	story.MedicalCondition = input.MedicalCondition
	story.TreatmentCategory = input.TreatmentCategory
	story.TreatmentProcess = input.TreatmentProcess
	story.Duration = input.Duration
	story.Outcome = input.Outcome
	story.MessageToOthers = input.MessageToOthers

	if err := service.stories.Save(&story); err != nil {
		return models.Story{}, err
	}

	service.revalidator.Invalidate(ViewStories, StoryDetailView(story.PublicID), ViewAdminStories)
	return story, nil
}

// Delete removes a story permanently. Allowed for the author and for admins.
func (service *StoryService) Delete(actor *models.User, publicID string) error {
	story, err := service.stories.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoryNotFound
		}
		return err
	}
	if !CanEditStory(actor, &story) {
		return ErrUnauthorized
	}

	if err := service.stories.DeleteByID(story.ID); err != nil {
		return err
	}

	service.revalidator.Invalidate(ViewStories, StoryDetailView(story.PublicID), ViewAdminStories)
	return nil
}

// UpdateStatus applies an admin status transition. The transition graph is
// enforced; the first transition into PUBLISHED stamps publishedAt and later
// transitions never overwrite it. Status write and audit append commit in
// one transaction.
func (service *StoryService) UpdateStatus(actor *models.User, publicID string, status string, notes string) error {
	if !IsAdminUser(actor) {
		return ErrUnauthorized
	}

	switch status {
	case models.StoryStatusDraft, models.StoryStatusPendingReview, models.StoryStatusPublished,
		models.StoryStatusRejected, models.StoryStatusInternalOnly, models.StoryStatusArchived:
	default:
		return ErrUnknownStoryStatus
	}

	story, err := service.stories.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoryNotFound
		}
		return err
	}

	if !CanTransitionStory(story.Status, status) {
		if story.Status == models.StoryStatusRejected {
			return ErrAlreadyDecided
		}
		return ErrInvalidTransition
	}

	updates := map[string]any{"status": status}
	if status == models.StoryStatusPublished && story.PublishedAt == nil {
		updates["published_at"] = time.Now()
	}

	entry := &models.ReviewLog{
		EntityType:  models.ReviewEntityStory,
		EntityID:    story.ID,
		AdminUserID: actor.ID,
		Decision:    StoryDecisionForStatus(status),
		Notes:       strings.TrimSpace(notes),
		CreatedAt:   time.Now(),
	}

	if err := service.stories.UpdateStatusWithReviewLog(story.ID, updates, entry); err != nil {
		return err
	}

	service.revalidator.Invalidate(ViewStories, StoryDetailView(story.PublicID), ViewAdminStories)
	return nil
}
