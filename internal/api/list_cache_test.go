package api

import (
	"net/http"
	"testing"

	"github.com/yuvalrn/hachlama/internal/services"
)

func TestStoryListCacheIgnoresUnrecognizedParams(t *testing.T) {
	app, _, handler := newTestHarness(t)

	for _, target := range []string{
		"/api/stories?junk=1",
		"/api/stories?junk=2&x=y",
		"/api/stories",
	} {
		response, err := app.Test(jsonRequest(t, http.MethodGet, target, nil, ""), -1)
		if err != nil {
			t.Fatalf("list request failed: %v", err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", target, response.StatusCode)
		}
		response.Body.Close()
	}

	if _, ok := handler.views.Get(services.ViewStories); !ok {
		t.Fatal("expected the base list key to be cached")
	}
	for _, variant := range []string{"junk=1", "junk=2&x=y"} {
		if _, ok := handler.views.Get(services.VariantKey(services.ViewStories, variant)); ok {
			t.Fatalf("expected no cache entry for raw query %q", variant)
		}
	}
}

func TestStoryListCacheKeysRecognizedFilters(t *testing.T) {
	app, _, handler := newTestHarness(t)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/stories?condition=Slipped+disc&junk=1", nil, ""), -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	if _, ok := handler.views.Get(services.VariantKey(services.ViewStories, "condition=Slipped+disc")); !ok {
		t.Fatal("expected cache entry keyed by the recognized filter only")
	}
}

func TestTherapistListCacheIgnoresUnrecognizedParams(t *testing.T) {
	app, _, handler := newTestHarness(t)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/therapists?junk=1", nil, ""), -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	if _, ok := handler.views.Get(services.ViewTherapists); !ok {
		t.Fatal("expected the base list key to be cached")
	}
	if _, ok := handler.views.Get(services.VariantKey(services.ViewTherapists, "junk=1")); ok {
		t.Fatal("expected no cache entry for the raw query")
	}
}
