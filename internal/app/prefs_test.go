package app_test

import (
	"context"
	"errors"
	"testing"

	"invisioo/internal/app"
	"invisioo/internal/domain"
)

func TestPrefs_RoundTrip(t *testing.T) {
	cache := &fakeCache{}
	s := app.NewPrefsService(cache)
	ctx := context.Background()

	st := domain.UIState{
		Active:       domain.FilterAll,
		SelectedCats: []domain.Category{domain.CatWheelchair, domain.CatVision},
		Search:       "аптека",
	}
	if err := s.Put(ctx, "u1", st); err != nil {
		t.Fatalf("put: %v", err)
	}

	got := s.Get(ctx, "u1")
	if got.Active != domain.FilterAll || got.Search != "аптека" || len(got.SelectedCats) != 2 {
		t.Fatalf("round trip lost state: %+v", got)
	}
}

func TestPrefs_MissFallsBackToDefault(t *testing.T) {
	s := app.NewPrefsService(&fakeCache{})

	got := s.Get(context.Background(), "nobody")
	want := domain.DefaultUIState()
	if got.Active != want.Active || got.Search != "" {
		t.Fatalf("miss must yield defaults, got %+v", got)
	}
	if got.SelectedCats == nil || len(got.SelectedCats) != 0 {
		t.Fatalf("defaults carry an empty category list, got %#v", got.SelectedCats)
	}
}

func TestPrefs_CorruptStateFallsBackToDefault(t *testing.T) {
	cache := &fakeCache{store: map[string]any{
		// a snapshot written by an older client with a status the server
		// no longer recognizes
		"prefs:u2": domain.UIState{Active: "broken"},
	}}
	s := app.NewPrefsService(cache)
	ctx := context.Background()

	got := s.Get(ctx, "u2")
	if got.Active != domain.DefaultUIState().Active {
		t.Fatalf("invalid stored state must yield defaults, got %+v", got)
	}
}

func TestPrefs_PutValidates(t *testing.T) {
	s := app.NewPrefsService(&fakeCache{})
	ctx := context.Background()

	err := s.Put(ctx, "u1", domain.UIState{Active: "nope"})
	if !errors.Is(err, domain.ErrBadStatus) {
		t.Fatalf("want ErrBadStatus, got %v", err)
	}

	err = s.Put(ctx, "u1", domain.UIState{
		Active:       domain.FilterAll,
		SelectedCats: []domain.Category{"teleport"},
	})
	if !errors.Is(err, domain.ErrBadCategory) {
		t.Fatalf("want ErrBadCategory, got %v", err)
	}
}
