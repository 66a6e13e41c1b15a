package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"invisioo/internal/domain"
)

// CommandService handles rating submissions and review creation. Every write
// invalidates the matching cache entries so reads recompute from storage.
type CommandService struct {
	repo  domain.RatingRepository
	cache domain.Cache
}

func NewCommandService(r domain.RatingRepository, c domain.Cache) *CommandService {
	return &CommandService{repo: r, cache: c}
}

// SubmitRating upserts one (place, category, user) score and returns the
// recomputed aggregate. Validation happens before any write: a missing
// identity or an out-of-range score never reaches the store.
func (s *CommandService) SubmitRating(ctx context.Context, r domain.CategoryRating) (map[domain.Category]domain.CategoryStats, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertRating(ctx, r); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, ratingsKey(r.PlaceID))
	}
	rows, err := s.repo.ListRatings(ctx, r.PlaceID)
	if err != nil {
		return nil, err
	}
	return domain.BuildStats(rows), nil
}

// SubmitRatings runs a "save all pending" batch sequentially, stopping on the
// first failure so nothing past the error is half-written.
func (s *CommandService) SubmitRatings(ctx context.Context, rs []domain.CategoryRating) (map[domain.Category]domain.CategoryStats, error) {
	var stats map[domain.Category]domain.CategoryStats
	for _, r := range rs {
		out, err := s.SubmitRating(ctx, r)
		if err != nil {
			return nil, err
		}
		stats = out
	}
	return stats, nil
}

// AddReview appends an anonymous review to the place. Reviews are immutable
// once created.
func (s *CommandService) AddReview(ctx context.Context, placeID, text string, stars int) (domain.Review, error) {
	rv := domain.Review{
		ID:        uuid.NewString(),
		PlaceID:   placeID,
		Author:    "Анонимно",
		Stars:     stars,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := rv.Validate(); err != nil {
		return domain.Review{}, err
	}
	if err := s.repo.InsertReview(ctx, rv); err != nil {
		return domain.Review{}, err
	}
	if s.cache != nil {
		// pages embed the generation in their key; dropping it
		// invalidates every cached page whatever its limit
		_ = s.cache.Del(ctx, reviewsVerKey(placeID))
	}
	return rv, nil
}
