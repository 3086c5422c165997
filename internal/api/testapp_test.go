package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/yuvalrn/hachlama/internal/db"
	"github.com/yuvalrn/hachlama/internal/i18n"
	"github.com/yuvalrn/hachlama/internal/models"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	app, database, _ := newTestHarness(t)
	return app, database
}

func newTestHarness(t *testing.T) (*fiber.App, *gorm.DB, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "hachlama-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve test file path: runtime.Caller failed")
	}
	localesDir := filepath.Join(filepath.Dir(thisFile), "..", "i18n", "locales")
	i18nManager, err := i18n.NewManager(i18n.LangEN, localesDir)
	if err != nil {
		t.Fatalf("i18n init: %v", err)
	}

	handler, err := NewHandler(database, "test-secret", i18nManager, false)
	if err != nil {
		t.Fatalf("handler init: %v", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)

	return app, database, handler
}

func jsonRequest(t *testing.T, method string, target string, payload any, cookie string) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept-Language", "en")
	if cookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+cookie)
	}
	return request
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func responseAuthCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Value
		}
	}
	return ""
}

// signupTestUser registers a user through the API and returns the session
// cookie value.
func signupTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
		"email":            email,
		"password":         "secret1",
		"confirm_password": "secret1",
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d", response.StatusCode)
	}
	cookie := responseAuthCookie(t, response)
	if cookie == "" {
		t.Fatal("expected session cookie after signup")
	}
	return cookie
}

func promoteToAdmin(t *testing.T, database *gorm.DB, email string) {
	t.Helper()

	result := database.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.RoleAdmin)
	if result.Error != nil {
		t.Fatalf("promote admin: %v", result.Error)
	}
	if result.RowsAffected != 1 {
		t.Fatalf("expected one promoted user, got %d", result.RowsAffected)
	}
}

func validStoryPayload() fiber.Map {
	return fiber.Map{
		"publication_choice": models.PublicationChoiceFirstNameLastInitial,
		"submitter_name":     "Dana Levi",
		"title":              "Back on my feet",
		"medical_condition":  "Slipped disc",
		"treatment_category": "Physiotherapy",
		"treatment_process":  "Twelve weeks of guided exercise",
		"consent_truthful":   true,
		"consent_publish":    true,
	}
}

func validTherapistPayload() fiber.Map {
	return fiber.Map{
		"full_name":            "Noa Mizrahi",
		"profession":           "Physiotherapist",
		"city":                 "Haifa",
		"contact_email":        "noa@example.com",
		"approach_description": "Gradual strength work",
		"consent_join":         true,
	}
}
