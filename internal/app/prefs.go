package app

import (
	"context"
	"fmt"

	"invisioo/internal/domain"
)

// PrefsService persists per-identity UI filter snapshots. Missing or corrupt
// state silently falls back to defaults.
type PrefsService struct {
	cache  domain.Cache
	ttlSec int
}

// Filter snapshots keep for 30 days, far past the rating cache TTL.
const prefsTTLSec = 30 * 24 * 3600

func NewPrefsService(c domain.Cache) *PrefsService {
	return &PrefsService{cache: c, ttlSec: prefsTTLSec}
}

func prefsKey(userID string) string { return fmt.Sprintf("prefs:%s", userID) }

func (s *PrefsService) Get(ctx context.Context, userID string) domain.UIState {
	var st domain.UIState
	ok, err := s.cache.Get(ctx, prefsKey(userID), &st)
	if err != nil || !ok || !st.Active.Valid() {
		return domain.DefaultUIState()
	}
	if st.SelectedCats == nil {
		st.SelectedCats = []domain.Category{}
	}
	return st
}

func (s *PrefsService) Put(ctx context.Context, userID string, st domain.UIState) error {
	if !st.Active.Valid() {
		return domain.ErrBadStatus
	}
	for _, c := range st.SelectedCats {
		if !c.Valid() {
			return domain.ErrBadCategory
		}
	}
	return s.cache.Set(ctx, prefsKey(userID), st, s.ttlSec)
}
