package mysql

// Upsert keyed by the unique index (place_id, category, user_id): re-rating
// under the same identity overwrites instead of duplicating.
const upsertRatingSQL = `
INSERT INTO place_ratings
  (place_id, category, user_id, score)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  score      = VALUES(score),
  updated_at = CURRENT_TIMESTAMP
`

const listRatingsSQL = `
SELECT category, score, user_id
FROM place_ratings
WHERE place_id = ?
`

const insertReviewSQL = `
INSERT INTO place_reviews
  (id, place_id, author, stars, ` + "`text`" + `, created_at)
VALUES
  (?, ?, ?, ?, ?, ?)
`

// Newest first; aligns with the index on (place_id, created_at, id).
const listReviewsSQL = `
SELECT id, place_id, author, stars, ` + "`text`" + `, created_at
FROM place_reviews
WHERE place_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`
