package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/yuvalrn/hachlama/internal/models"
)

func seedStory(t *testing.T, repos *Repositories, publicID string, status string, publishedAt *time.Time) models.Story {
	t.Helper()

	story := models.Story{
		PublicID:          publicID,
		Status:            status,
		PublicationChoice: models.PublicationChoiceAnonymous,
		DisplayName:       "אנונימי",
		Title:             "Back on my feet",
		MedicalCondition:  "Slipped disc",
		TreatmentCategory: "Physiotherapy",
		TreatmentProcess:  "Twelve weeks of guided exercise",
		ConsentTruthful:   true,
		ConsentPublish:    true,
		SubmittedAt:       time.Now(),
		PublishedAt:       publishedAt,
	}
	if err := repos.Stories.Create(&story); err != nil {
		t.Fatalf("create story: %v", err)
	}
	return story
}

func TestUpdateStatusWithReviewLogPublishes(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "publish.db"))
	repos := NewRepositories(database)
	story := seedStory(t, repos, "s-publish", models.StoryStatusPendingReview, nil)

	publishedAt := time.Now()
	entry := &models.ReviewLog{
		EntityType:  models.ReviewEntityStory,
		EntityID:    story.ID,
		AdminUserID: 99,
		Decision:    models.DecisionApproved,
		CreatedAt:   time.Now(),
	}
	err := repos.Stories.UpdateStatusWithReviewLog(story.ID, map[string]any{
		"status":       models.StoryStatusPublished,
		"published_at": publishedAt,
	}, entry)
	if err != nil {
		t.Fatalf("UpdateStatusWithReviewLog() unexpected error: %v", err)
	}

	reloaded, err := repos.Stories.FindByID(story.ID)
	if err != nil {
		t.Fatalf("reload story: %v", err)
	}
	if reloaded.Status != models.StoryStatusPublished {
		t.Fatalf("expected PUBLISHED, got %s", reloaded.Status)
	}
	if reloaded.PublishedAt == nil {
		t.Fatal("expected publishedAt to be set")
	}

	logCount, err := repos.ReviewLogs.CountForEntity(models.ReviewEntityStory, story.ID)
	if err != nil {
		t.Fatalf("count review logs: %v", err)
	}
	if logCount != 1 {
		t.Fatalf("expected one review log, got %d", logCount)
	}
}

func TestListPublishedFilters(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "list.db"))
	repos := NewRepositories(database)

	now := time.Now()
	seedStory(t, repos, "s-1", models.StoryStatusPublished, &now)
	seedStory(t, repos, "s-2", models.StoryStatusPendingReview, nil)
	seedStory(t, repos, "s-3", models.StoryStatusRejected, nil)

	published, err := repos.Stories.ListPublished("", "")
	if err != nil {
		t.Fatalf("ListPublished() unexpected error: %v", err)
	}
	if len(published) != 1 || published[0].PublicID != "s-1" {
		t.Fatalf("expected only the published story, got %+v", published)
	}

	filtered, err := repos.Stories.ListPublished("Broken arm", "")
	if err != nil {
		t.Fatalf("ListPublished() unexpected error: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no matches for unrelated condition, got %d", len(filtered))
	}
}

func TestListByAuthorOrdersBySubmission(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "author.db"))
	repos := NewRepositories(database)

	authorID := uint(7)
	older := seedStory(t, repos, "s-old", models.StoryStatusPendingReview, nil)
	newer := seedStory(t, repos, "s-new", models.StoryStatusPendingReview, nil)

	if err := database.Model(&models.Story{}).Where("id = ?", older.ID).
		Updates(map[string]any{"author_user_id": authorID, "submitted_at": time.Now().Add(-time.Hour)}).Error; err != nil {
		t.Fatalf("backdate older story: %v", err)
	}
	if err := database.Model(&models.Story{}).Where("id = ?", newer.ID).
		Update("author_user_id", authorID).Error; err != nil {
		t.Fatalf("assign newer story: %v", err)
	}

	stories, err := repos.Stories.ListByAuthor(authorID)
	if err != nil {
		t.Fatalf("ListByAuthor() unexpected error: %v", err)
	}
	if len(stories) != 2 {
		t.Fatalf("expected two stories, got %d", len(stories))
	}
	if stories[0].PublicID != "s-new" {
		t.Fatalf("expected newest first, got %s", stories[0].PublicID)
	}
}
