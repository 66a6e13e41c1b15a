package domain

import "time"

// Review is an anonymous free-text review attached to a place.
// Immutable once created.
type Review struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"placeId"`
	Author    string    `json:"author"` // always "Анонимно" for now
	Stars     int       `json:"rating"` // 1–5
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Review) Validate() error {
	if r.PlaceID == "" || r.Text == "" {
		return ErrBadReview
	}
	if r.Stars < 1 || r.Stars > 5 {
		return ErrBadReview
	}
	return nil
}

type ReviewsPage struct {
	Items []Review `json:"items"`
}
