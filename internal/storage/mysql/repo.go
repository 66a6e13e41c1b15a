package mysql

import (
	"context"
	"database/sql"

	"invisioo/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRating(ctx context.Context, cr domain.CategoryRating) error {
	_, err := r.db.ExecContext(ctx, upsertRatingSQL,
		cr.PlaceID,
		string(cr.Category),
		cr.UserID,
		cr.Score,
	)
	return err
}

func (r *Repo) ListRatings(ctx context.Context, placeID string) ([]domain.CategoryRating, error) {
	rows, err := r.db.QueryContext(ctx, listRatingsSQL, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CategoryRating
	for rows.Next() {
		cr := domain.CategoryRating{PlaceID: placeID}
		var cat string
		if err := rows.Scan(&cat, &cr.Score, &cr.UserID); err != nil {
			return nil, err
		}
		cr.Category = domain.Category(cat)
		out = append(out, cr)
	}
	return out, rows.Err()
}

func (r *Repo) InsertReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID,
		rv.PlaceID,
		rv.Author,
		rv.Stars,
		rv.Text,
		rv.CreatedAt,
	)
	return err
}

func (r *Repo) ListReviews(ctx context.Context, placeID string, limit int) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, placeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var created sql.NullTime
		if err := rows.Scan(&rv.ID, &rv.PlaceID, &rv.Author, &rv.Stars, &rv.Text, &created); err != nil {
			return nil, err
		}
		if created.Valid {
			rv.CreatedAt = created.Time
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
