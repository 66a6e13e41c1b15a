package placestore_test

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"invisioo/internal/adapters/snapshot"
	"invisioo/internal/app"
	"invisioo/internal/domain"
	"invisioo/internal/shared"
	"invisioo/internal/storage/placestore"
)

type fakeSnap struct {
	loaded []domain.Place
	ok     bool
	err    error

	mu    sync.Mutex
	saved [][]domain.Place
}

func (f *fakeSnap) Load() ([]domain.Place, bool) { return f.loaded, f.ok }

// Save may be called from the store's flush timer, so it takes the lock.
func (f *fakeSnap) Save(places []domain.Place) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, places)
	return f.err
}

func (f *fakeSnap) last() ([]domain.Place, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil, 0
	}
	return f.saved[len(f.saved)-1], len(f.saved)
}

func seed() []domain.Place {
	return []domain.Place{
		{ID: "a", Name: "A", Status: domain.StatusAccessible, Lat: 43.2, Lng: 76.9},
		{ID: "b", Name: "B", Status: domain.StatusPartial, Lat: 43.3, Lng: 76.8},
	}
}

func TestNew_SeedsWhenNoSnapshot(t *testing.T) {
	s := placestore.New(seed(), &fakeSnap{}, false)
	got := s.List()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("seed order lost: %+v", got)
	}
}

func TestNew_SnapshotOverridesSeed(t *testing.T) {
	snap := &fakeSnap{
		loaded: []domain.Place{{ID: "saved", Name: "Saved", Status: domain.StatusNot, Lat: 43, Lng: 77}},
		ok:     true,
	}
	s := placestore.New(seed(), snap, false)
	got := s.List()
	if len(got) != 1 || got[0].ID != "saved" {
		t.Fatalf("snapshot must override seed: %+v", got)
	}
}

func TestNew_EmptySnapshotFallsBackToSeed(t *testing.T) {
	snap := &fakeSnap{loaded: []domain.Place{}, ok: true}
	s := placestore.New(seed(), snap, false)
	if got := s.List(); len(got) != 2 {
		t.Fatalf("empty snapshot must not shadow the seed: %+v", got)
	}
}

func TestGet(t *testing.T) {
	s := placestore.New(seed(), &fakeSnap{}, false)
	p, err := s.Get("b")
	if err != nil || p.Name != "B" {
		t.Fatalf("get: %+v, %v", p, err)
	}
	if _, err := s.Get("zzz"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAdd_EditGateAndDuplicates(t *testing.T) {
	p := domain.Place{ID: "c", Name: "C", Status: domain.StatusAccessible, Lat: 43.1, Lng: 76.7}

	locked := placestore.New(seed(), &fakeSnap{}, false)
	if err := locked.Add(p); !errors.Is(err, domain.ErrEditDisabled) {
		t.Fatalf("want ErrEditDisabled, got %v", err)
	}

	s := placestore.New(seed(), &fakeSnap{}, true)
	if err := s.Add(p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(p); !errors.Is(err, domain.ErrDuplicateID) {
		t.Fatalf("want ErrDuplicateID, got %v", err)
	}
	if got := s.List(); len(got) != 3 || got[2].ID != "c" {
		t.Fatalf("new place must append in order: %+v", got)
	}
}

func TestAddAt_PlaceholderFields(t *testing.T) {
	s := placestore.New(seed(), &fakeSnap{}, true)
	p, err := s.AddAt(43.25, 76.91)
	if err != nil {
		t.Fatalf("addAt: %v", err)
	}
	if !strings.HasPrefix(p.ID, "new_") {
		t.Fatalf("placeholder id must carry the new_ prefix, got %q", p.ID)
	}
	if p.Name != "Новое место" || p.Status != domain.StatusAccessible {
		t.Fatalf("unexpected placeholder: %+v", p)
	}
	if p.Lat != 43.25 || p.Lng != 76.91 {
		t.Fatalf("placeholder must sit at the clicked coordinate: %+v", p)
	}

	if _, err := s.AddAt(91, 0); !errors.Is(err, domain.ErrBadCoords) {
		t.Fatalf("want ErrBadCoords, got %v", err)
	}

	locked := placestore.New(seed(), &fakeSnap{}, false)
	if _, err := locked.AddAt(43.25, 76.91); !errors.Is(err, domain.ErrEditDisabled) {
		t.Fatalf("want ErrEditDisabled, got %v", err)
	}
}

func TestPatch(t *testing.T) {
	s := placestore.New(seed(), &fakeSnap{}, false)

	name := "Обновлено"
	status := domain.StatusNot
	got, err := s.Patch("a", domain.PlacePatch{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if got.Name != "Обновлено" || got.Status != domain.StatusNot {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Lat != 43.2 {
		t.Fatalf("untouched fields must survive: %+v", got)
	}

	bad := domain.PlaceStatus("flying")
	if _, err := s.Patch("a", domain.PlacePatch{Status: &bad}); !errors.Is(err, domain.ErrBadStatus) {
		t.Fatalf("want ErrBadStatus, got %v", err)
	}

	lat := 200.0
	if _, err := s.Patch("a", domain.PlacePatch{Lat: &lat}); !errors.Is(err, domain.ErrBadCoords) {
		t.Fatalf("want ErrBadCoords, got %v", err)
	}

	if _, err := s.Patch("zzz", domain.PlacePatch{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// rejected patches must not half-apply
	if p, _ := s.Get("a"); p.Lat != 43.2 {
		t.Fatalf("failed patch leaked into the store: %+v", p)
	}
}

func TestRemove(t *testing.T) {
	s := placestore.New(seed(), &fakeSnap{}, false)
	if err := s.Remove("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := s.List(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("unexpected survivors: %+v", got)
	}
	if err := s.Remove("a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestFlush_PersistsAllMutations(t *testing.T) {
	snap := &fakeSnap{}
	s := placestore.New(seed(), snap, true)

	name := "x"
	if _, err := s.AddAt(43.2, 76.9); err != nil {
		t.Fatalf("addAt: %v", err)
	}
	if _, err := s.Patch("a", domain.PlacePatch{Name: &name}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if err := s.Remove("b"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	s.Flush()
	// the debounce timer may still fire once mid-burst on a slow runner,
	// so assert the final snapshot rather than an exact write count
	last, writes := snap.last()
	if writes == 0 {
		t.Fatal("flush must persist a snapshot")
	}
	if len(last) != 2 {
		t.Fatalf("snapshot must reflect all mutations: %+v", last)
	}
	for _, p := range last {
		if p.ID == "b" {
			t.Fatalf("removed place leaked into snapshot")
		}
	}
}

func TestSnapshotRoundTrip_PreservesFilteredView(t *testing.T) {
	snap := snapshot.NewFile(t.TempDir())
	s := placestore.New(shared.SeedPlaces, snap, true)

	status := domain.StatusPartial
	if _, err := s.Patch("atakent_mall", domain.PlacePatch{Status: &status}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if err := s.Remove("moscow"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	s.Flush()

	restored := placestore.New(nil, snap, true)

	filter := app.PlaceFilter{Status: domain.StatusFilter(domain.StatusPartial), Categories: []domain.Category{domain.CatWheelchair}}
	before := app.FilterPlaces(s.List(), filter)
	after := app.FilterPlaces(restored.List(), filter)
	if len(before) == 0 {
		t.Fatalf("filter selected nothing, test is vacuous")
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("restored view differs:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSeedCatalog(t *testing.T) {
	s := placestore.New(shared.SeedPlaces, &fakeSnap{}, false)
	all := s.List()
	if len(all) == 0 {
		t.Fatalf("seed catalog is empty")
	}
	ids := map[string]bool{}
	for _, p := range all {
		if err := p.Validate(); err != nil {
			t.Fatalf("seed place %s invalid: %v", p.ID, err)
		}
		if ids[p.ID] {
			t.Fatalf("duplicate seed id %s", p.ID)
		}
		ids[p.ID] = true
		for _, c := range p.Supports {
			if !c.Valid() {
				t.Fatalf("seed place %s carries unknown category %s", p.ID, c)
			}
		}
	}
	if !ids["atakent_mall"] || !ids["Hotel_Kazakhstan"] {
		t.Fatalf("expected well-known seed entries, got %v", ids)
	}
}
