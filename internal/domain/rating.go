package domain

import "math"

// CategoryRating is one submitted score, owned by (place, category, user).
// Re-submitting under the same key overwrites the stored score.
type CategoryRating struct {
	PlaceID  string   `json:"placeId"`
	Category Category `json:"category"`
	Score    int      `json:"score"` // 1–10
	UserID   string   `json:"-"`
}

func (r CategoryRating) Validate() error {
	if r.PlaceID == "" {
		return ErrBadPlace
	}
	if !r.Category.Valid() {
		return ErrBadCategory
	}
	if r.Score < 1 || r.Score > 10 {
		return ErrBadScore
	}
	if r.UserID == "" {
		return ErrNoIdentity
	}
	return nil
}

// CategoryStats is the aggregate view for one category.
type CategoryStats struct {
	Avg   float64 `json:"avg"` // arithmetic mean, one decimal place
	Count int     `json:"count"`
}

// BuildStats groups ratings by category and averages each group. Input order
// does not affect the result.
func BuildStats(rows []CategoryRating) map[Category]CategoryStats {
	type acc struct {
		sum   int
		count int
	}
	grouped := map[Category]*acc{}
	for _, row := range rows {
		a := grouped[row.Category]
		if a == nil {
			a = &acc{}
			grouped[row.Category] = a
		}
		a.sum += row.Score
		a.count++
	}
	out := make(map[Category]CategoryStats, len(grouped))
	for cat, a := range grouped {
		out[cat] = CategoryStats{
			Avg:   math.Round(float64(a.sum)/float64(a.count)*10) / 10,
			Count: a.count,
		}
	}
	return out
}
