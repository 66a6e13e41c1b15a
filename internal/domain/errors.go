package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrBadPlace     = errors.New("bad_place")
	ErrBadStatus    = errors.New("bad_status")
	ErrBadCoords    = errors.New("bad_coords")
	ErrBadCategory  = errors.New("bad_category")
	ErrBadScore     = errors.New("bad_score")
	ErrBadReview    = errors.New("bad_review")
	ErrNoIdentity   = errors.New("no_identity")
	ErrEmptyChat    = errors.New("empty_chat")
	ErrBadURL       = errors.New("bad_url")
	ErrEditDisabled = errors.New("edit_disabled")
	ErrDuplicateID  = errors.New("duplicate_id")
)
