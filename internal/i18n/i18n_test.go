package i18n

import (
	"path/filepath"
	"runtime"
	"testing"
)

func newTestManager(t *testing.T, defaultLanguage string) *Manager {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve test file path: runtime.Caller failed")
	}
	manager, err := NewManager(defaultLanguage, filepath.Join(filepath.Dir(thisFile), "locales"))
	if err != nil {
		t.Fatalf("NewManager() unexpected error: %v", err)
	}
	return manager
}

func TestNormalizeLanguage(t *testing.T) {
	manager := newTestManager(t, LangHE)

	if got := manager.NormalizeLanguage("EN-us"); got != LangEN {
		t.Fatalf("NormalizeLanguage() = %q, want %q", got, LangEN)
	}
	if got := manager.NormalizeLanguage("he_IL"); got != LangHE {
		t.Fatalf("NormalizeLanguage() = %q, want %q", got, LangHE)
	}
	if got := manager.NormalizeLanguage("fr"); got != LangHE {
		t.Fatalf("expected fallback to default, got %q", got)
	}
	if got := manager.NormalizeLanguage(""); got != LangHE {
		t.Fatalf("expected default for blank input, got %q", got)
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager := newTestManager(t, LangHE)

	if got := manager.DetectFromAcceptLanguage("en-US,en;q=0.9,he;q=0.8"); got != LangEN {
		t.Fatalf("DetectFromAcceptLanguage() = %q, want %q", got, LangEN)
	}
	if got := manager.DetectFromAcceptLanguage("fr-FR,de;q=0.9"); got != LangHE {
		t.Fatalf("expected fallback to default, got %q", got)
	}
}

func TestTranslateFallsBackToDefaultLanguage(t *testing.T) {
	manager := newTestManager(t, LangHE)

	if got := manager.Translate(LangEN, "error.unauthorized"); got == "error.unauthorized" {
		t.Fatal("expected en translation for error.unauthorized")
	}
	if got := manager.Translate("fr", "error.unauthorized"); got == "error.unauthorized" {
		t.Fatal("expected default-language translation for unsupported language")
	}
	if got := manager.Translate(LangHE, "error.nonexistent_key"); got != "error.nonexistent_key" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
}
