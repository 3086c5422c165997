package services

import "sync"

// Revalidator receives fire-and-forget notifications that logical views went
// stale after a successful transition. No acknowledgment is expected.
type Revalidator interface {
	Invalidate(views ...string)
}

const (
	ViewStories         = "stories"
	ViewAdminStories    = "admin/stories"
	ViewTherapists      = "therapists"
	ViewAdminTherapists = "admin/therapists"
)

func StoryDetailView(publicID string) string {
	return ViewStories + "/" + publicID
}

func TherapistDetailView(publicID string) string {
	return ViewTherapists + "/" + publicID
}

// ViewCache memoizes rendered public responses until a workflow transition
// invalidates them. Keys are a view name plus an optional "?variant" suffix
// for filtered listings; invalidating a view drops all of its variants.
type ViewCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewViewCache() *ViewCache {
	return &ViewCache{entries: map[string][]byte{}}
}

func VariantKey(view string, variant string) string {
	if variant == "" {
		return view
	}
	return view + "?" + variant
}

func (cache *ViewCache) Get(key string) ([]byte, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	payload, ok := cache.entries[key]
	return payload, ok
}

func (cache *ViewCache) Set(key string, payload []byte) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[key] = payload
}

func (cache *ViewCache) Invalidate(views ...string) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for _, view := range views {
		delete(cache.entries, view)
		prefix := view + "?"
		for key := range cache.entries {
			if len(key) > len(prefix) && key[:len(prefix)] == prefix {
				delete(cache.entries, key)
			}
		}
	}
}
