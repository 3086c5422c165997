package services

import (
	"errors"

	"github.com/yuvalrn/hachlama/internal/models"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAlreadyDecided    = errors.New("decision already recorded")
	ErrInvalidTransition = errors.New("invalid status transition")
)

func IsAdminUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}

// CanEditStory allows the author and any admin. Stories without an author
// (legacy imports) are admin-editable only.
func CanEditStory(actor *models.User, story *models.Story) bool {
	if IsAdminUser(actor) {
		return true
	}
	if actor == nil || story.AuthorUserID == nil {
		return false
	}
	return *story.AuthorUserID == actor.ID
}

// Transition graphs. A status missing from the map is terminal. REJECTED
// therapists are deleted rather than kept, so they have no row to transition.
var therapistTransitions = map[string][]string{
	models.TherapistStatusPending:   {models.TherapistStatusApproved, models.TherapistStatusRejected},
	models.TherapistStatusApproved:  {models.TherapistStatusSuspended, models.TherapistStatusRejected},
	models.TherapistStatusSuspended: {models.TherapistStatusApproved, models.TherapistStatusRejected},
}

var storyTransitions = map[string][]string{
	models.StoryStatusDraft:         {models.StoryStatusPendingReview},
	models.StoryStatusPendingReview: {models.StoryStatusPublished, models.StoryStatusRejected, models.StoryStatusInternalOnly},
	models.StoryStatusPublished:     {models.StoryStatusArchived, models.StoryStatusInternalOnly},
	models.StoryStatusInternalOnly:  {models.StoryStatusPublished, models.StoryStatusArchived},
	models.StoryStatusArchived:      {models.StoryStatusPublished},
}

func CanTransitionTherapist(current string, next string) bool {
	return transitionAllowed(therapistTransitions, current, next)
}

func CanTransitionStory(current string, next string) bool {
	return transitionAllowed(storyTransitions, current, next)
}

func transitionAllowed(graph map[string][]string, current string, next string) bool {
	for _, allowed := range graph[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TherapistDecisionForStatus maps a target status to the audit decision.
// Suspension is recorded as CHANGES_REQUESTED; the log has no finer bucket.
func TherapistDecisionForStatus(status string) string {
	switch status {
	case models.TherapistStatusApproved:
		return models.DecisionApproved
	case models.TherapistStatusRejected:
		return models.DecisionRejected
	default:
		return models.DecisionChangesRequested
	}
}

// StoryDecisionForStatus collapses every non-publish, non-reject status to
// CHANGES_REQUESTED in the audit trail.
func StoryDecisionForStatus(status string) string {
	switch status {
	case models.StoryStatusPublished:
		return models.DecisionApproved
	case models.StoryStatusRejected:
		return models.DecisionRejected
	default:
		return models.DecisionChangesRequested
	}
}
