package services

import (
	"testing"

	"github.com/yuvalrn/hachlama/internal/models"
)

func TestCanTransitionTherapist(t *testing.T) {
	cases := []struct {
		current string
		next    string
		want    bool
	}{
		{models.TherapistStatusPending, models.TherapistStatusApproved, true},
		{models.TherapistStatusPending, models.TherapistStatusRejected, true},
		{models.TherapistStatusPending, models.TherapistStatusSuspended, false},
		{models.TherapistStatusApproved, models.TherapistStatusSuspended, true},
		{models.TherapistStatusApproved, models.TherapistStatusRejected, true},
		{models.TherapistStatusApproved, models.TherapistStatusPending, false},
		{models.TherapistStatusSuspended, models.TherapistStatusApproved, true},
		{models.TherapistStatusSuspended, models.TherapistStatusRejected, true},
		{models.TherapistStatusRejected, models.TherapistStatusApproved, false},
	}

	for _, testCase := range cases {
		got := CanTransitionTherapist(testCase.current, testCase.next)
		if got != testCase.want {
			t.Fatalf("CanTransitionTherapist(%s, %s) = %v, want %v",
				testCase.current, testCase.next, got, testCase.want)
		}
	}
}

func TestCanTransitionStory(t *testing.T) {
	cases := []struct {
		current string
		next    string
		want    bool
	}{
		{models.StoryStatusDraft, models.StoryStatusPendingReview, true},
		{models.StoryStatusDraft, models.StoryStatusPublished, false},
		{models.StoryStatusPendingReview, models.StoryStatusPublished, true},
		{models.StoryStatusPendingReview, models.StoryStatusRejected, true},
		{models.StoryStatusPendingReview, models.StoryStatusInternalOnly, true},
		{models.StoryStatusPendingReview, models.StoryStatusArchived, false},
		{models.StoryStatusPublished, models.StoryStatusArchived, true},
		{models.StoryStatusPublished, models.StoryStatusInternalOnly, true},
		{models.StoryStatusPublished, models.StoryStatusRejected, false},
		{models.StoryStatusInternalOnly, models.StoryStatusPublished, true},
		{models.StoryStatusInternalOnly, models.StoryStatusArchived, true},
		{models.StoryStatusArchived, models.StoryStatusPublished, true},
		{models.StoryStatusRejected, models.StoryStatusPublished, false},
		{models.StoryStatusRejected, models.StoryStatusPendingReview, false},
	}

	for _, testCase := range cases {
		got := CanTransitionStory(testCase.current, testCase.next)
		if got != testCase.want {
			t.Fatalf("CanTransitionStory(%s, %s) = %v, want %v",
				testCase.current, testCase.next, got, testCase.want)
		}
	}
}

func TestCanEditStoryAllowsAuthorAndAdmin(t *testing.T) {
	authorID := uint(7)
	story := models.Story{AuthorUserID: &authorID}

	author := &models.User{ID: 7, Role: models.RoleBasic}
	stranger := &models.User{ID: 8, Role: models.RoleTherapist}
	admin := &models.User{ID: 9, Role: models.RoleAdmin}

	if !CanEditStory(author, &story) {
		t.Fatal("expected author to be allowed")
	}
	if CanEditStory(stranger, &story) {
		t.Fatal("expected non-author to be denied")
	}
	if !CanEditStory(admin, &story) {
		t.Fatal("expected admin to be allowed")
	}
	if CanEditStory(nil, &story) {
		t.Fatal("expected anonymous to be denied")
	}
}

func TestCanEditStoryWithoutAuthorIsAdminOnly(t *testing.T) {
	story := models.Story{}

	if CanEditStory(&models.User{ID: 1, Role: models.RoleBasic}, &story) {
		t.Fatal("expected basic user to be denied on authorless story")
	}
	if !CanEditStory(&models.User{ID: 2, Role: models.RoleAdmin}, &story) {
		t.Fatal("expected admin to be allowed on authorless story")
	}
}

func TestTherapistDecisionForStatus(t *testing.T) {
	if got := TherapistDecisionForStatus(models.TherapistStatusApproved); got != models.DecisionApproved {
		t.Fatalf("approved maps to %q", got)
	}
	if got := TherapistDecisionForStatus(models.TherapistStatusRejected); got != models.DecisionRejected {
		t.Fatalf("rejected maps to %q", got)
	}
	if got := TherapistDecisionForStatus(models.TherapistStatusSuspended); got != models.DecisionChangesRequested {
		t.Fatalf("suspended maps to %q", got)
	}
}

func TestStoryDecisionForStatus(t *testing.T) {
	if got := StoryDecisionForStatus(models.StoryStatusPublished); got != models.DecisionApproved {
		t.Fatalf("published maps to %q", got)
	}
	if got := StoryDecisionForStatus(models.StoryStatusRejected); got != models.DecisionRejected {
		t.Fatalf("rejected maps to %q", got)
	}
	if got := StoryDecisionForStatus(models.StoryStatusInternalOnly); got != models.DecisionChangesRequested {
		t.Fatalf("internal-only maps to %q", got)
	}
	if got := StoryDecisionForStatus(models.StoryStatusArchived); got != models.DecisionChangesRequested {
		t.Fatalf("archived maps to %q", got)
	}
}
