// Package placestore holds the authoritative in-memory place collection.
//
// The collection is seeded from a static list, overridden by a persisted
// snapshot when one loads cleanly, and mirrored back through the Snapshot
// port after a 400ms quiet period following any mutation.
package placestore

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"invisioo/internal/domain"
)

const saveDebounce = 400 * time.Millisecond

type Store struct {
	mu       sync.Mutex
	places   []domain.Place
	snap     domain.Snapshot
	timer    *time.Timer
	editMode bool
	now      func() time.Time // injectable for tests
}

// New builds a store from the snapshot when present, else from seed.
// A corrupt or empty snapshot is treated as "no persisted data".
func New(seed []domain.Place, snap domain.Snapshot, editMode bool) *Store {
	s := &Store{snap: snap, editMode: editMode, now: time.Now}
	if saved, ok := snap.Load(); ok && len(saved) > 0 {
		s.places = saved
		log.Info().Int("places", len(saved)).Msg("place snapshot restored")
	} else {
		s.places = append([]domain.Place(nil), seed...)
		log.Info().Int("places", len(seed)).Msg("place store seeded")
	}
	return s
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Place, len(s.places))
	copy(out, s.places)
	return out
}

func (s *Store) Get(id string) (domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.places {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Place{}, domain.ErrNotFound
}

// Add appends a fully specified place. Fails on a duplicate id or invalid
// fields; insertion order is preserved for later reads.
func (s *Store) Add(p domain.Place) error {
	if !s.editMode {
		return domain.ErrEditDisabled
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.places {
		if q.ID == p.ID {
			return domain.ErrDuplicateID
		}
	}
	s.places = append(s.places, p)
	s.scheduleSaveLocked()
	return nil
}

// AddAt creates a placeholder place at the clicked coordinate. Allowed only
// while edit mode is enabled.
func (s *Store) AddAt(lat, lng float64) (domain.Place, error) {
	if !s.editMode {
		return domain.Place{}, domain.ErrEditDisabled
	}
	if !(domain.Coords{Lat: lat, Lng: lng}).Valid() {
		return domain.Place{}, domain.ErrBadCoords
	}
	p := domain.Place{
		ID:       fmt.Sprintf("new_%d", s.now().UnixMilli()),
		Name:     "Новое место",
		Category: "Категория",
		Status:   domain.StatusAccessible,
		Lat:      lat,
		Lng:      lng,
		Address:  "Добавьте адрес",
		Details:  []string{"Добавьте характеристики"},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = append(s.places, p)
	s.scheduleSaveLocked()
	return p, nil
}

// Patch applies a field-level mutation to the place with the given id.
func (s *Store) Patch(id string, patch domain.PlacePatch) (domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.places {
		if s.places[i].ID != id {
			continue
		}
		next := s.places[i]
		if patch.Name != nil {
			next.Name = *patch.Name
		}
		if patch.Category != nil {
			next.Category = *patch.Category
		}
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return domain.Place{}, domain.ErrBadStatus
			}
			next.Status = *patch.Status
		}
		if patch.Lat != nil {
			next.Lat = *patch.Lat
		}
		if patch.Lng != nil {
			next.Lng = *patch.Lng
		}
		if !(domain.Coords{Lat: next.Lat, Lng: next.Lng}).Valid() {
			return domain.Place{}, domain.ErrBadCoords
		}
		if patch.Address != nil {
			next.Address = *patch.Address
		}
		if patch.Details != nil {
			next.Details = patch.Details
		}
		if patch.Supports != nil {
			for _, c := range patch.Supports {
				if !c.Valid() {
					return domain.Place{}, domain.ErrBadCategory
				}
			}
			next.Supports = patch.Supports
		}
		s.places[i] = next
		s.scheduleSaveLocked()
		return next, nil
	}
	return domain.Place{}, domain.ErrNotFound
}

// Remove evicts the place from the collection; the persisted snapshot drops
// it on the next debounce tick.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.places {
		if s.places[i].ID == id {
			s.places = append(s.places[:i], s.places[i+1:]...)
			s.scheduleSaveLocked()
			return nil
		}
	}
	return domain.ErrNotFound
}

// scheduleSaveLocked coalesces rapid mutations into one write after the
// quiet period. Caller holds s.mu.
func (s *Store) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(saveDebounce, s.persist)
}

func (s *Store) persist() {
	snapshot := s.List()
	if err := s.snap.Save(snapshot); err != nil {
		log.Error().Err(err).Msg("place snapshot save failed")
	}
}

// Flush writes any pending snapshot immediately. Used on shutdown and in
// tests to avoid waiting out the debounce.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.persist()
}
