package domain

import "context"

// RatingRepository persists per-user category scores and reviews.
type RatingRepository interface {
	// UpsertRating inserts or overwrites the row keyed by
	// (place_id, category, user_id).
	UpsertRating(ctx context.Context, r CategoryRating) error
	ListRatings(ctx context.Context, placeID string) ([]CategoryRating, error)

	InsertReview(ctx context.Context, rv Review) error
	ListReviews(ctx context.Context, placeID string, limit int) ([]Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Snapshot is the persistence port for the in-memory place collection.
// Load returns ok=false when nothing usable is stored (absent, empty or
// corrupt) so the caller falls back to the seed list.
type Snapshot interface {
	Load() (places []Place, ok bool)
	Save(places []Place) error
}

// ChatMessage is one turn of the normalized chat contract.
type ChatMessage struct {
	Role    string `json:"role"` // system|user|assistant
	Content string `json:"content"`
}

// Assistant is the generative-AI collaborator.
type Assistant interface {
	// Chat runs a role-tagged conversation and returns the reply text.
	Chat(ctx context.Context, msgs []ChatMessage) (string, error)
	// Generate runs a single free-form prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// VacancyFetcher pulls a best-effort plain-text extraction of an external
// job listing page.
type VacancyFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// UIState is the persisted filter snapshot, restored at startup by the client.
type UIState struct {
	Active       StatusFilter `json:"active"`
	SelectedCats []Category   `json:"selectedCats"`
	Search       string       `json:"search"`
}

// DefaultUIState mirrors the client's initial state.
func DefaultUIState() UIState {
	return UIState{Active: StatusFilter(StatusAccessible), SelectedCats: []Category{}}
}
