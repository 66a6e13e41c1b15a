package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"invisioo/internal/domain"
)

// QueryService serves rating aggregates and review lists with a
// read-through cache in front of the repository.
type QueryService struct {
	repo     domain.RatingRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.RatingRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func ratingsKey(placeID string) string    { return fmt.Sprintf("ratings:%s", placeID) }
func reviewsVerKey(placeID string) string { return fmt.Sprintf("reviews_ver:%s", placeID) }
func reviewsKey(placeID, ver string, limit int) string {
	return fmt.Sprintf("reviews:%s:%s:%d", placeID, ver, limit)
}

// reviewsVer returns the place's current review generation. Cached pages
// embed it in their key, so dropping the generation orphans all of them
// at once regardless of the limit they were listed with.
func (s *QueryService) reviewsVer(ctx context.Context, placeID string) string {
	key := reviewsVerKey(placeID)
	var ver string
	if ok, _ := s.cache.Get(ctx, key, &ver); ok {
		return ver
	}
	ver = strconv.FormatInt(time.Now().UnixNano(), 36)
	_ = s.cache.Set(ctx, key, ver, int(s.cacheTTL.Seconds()))
	return ver
}

// GetRatings returns per-category {avg, count} for the place. An unknown
// place simply has no rows and yields an empty map.
func (s *QueryService) GetRatings(ctx context.Context, placeID string) (map[domain.Category]domain.CategoryStats, error) {
	key := ratingsKey(placeID)
	var cached map[domain.Category]domain.CategoryStats
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	rows, err := s.repo.ListRatings(ctx, placeID)
	if err != nil {
		return nil, err
	}
	stats := domain.BuildStats(rows)
	_ = s.cache.Set(ctx, key, stats, int(s.cacheTTL.Seconds()))
	return stats, nil
}

func (s *QueryService) ListReviews(ctx context.Context, placeID string, limit int) (domain.ReviewsPage, error) {
	key := reviewsKey(placeID, s.reviewsVer(ctx, placeID), limit)
	var out domain.ReviewsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	items, err := s.repo.ListReviews(ctx, placeID, limit)
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	page := domain.ReviewsPage{Items: items}
	// copy before caching so callers can't mutate the cached slice
	cp := domain.ReviewsPage{Items: append([]domain.Review(nil), items...)}
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return page, nil
}
