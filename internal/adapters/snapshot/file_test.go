package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"invisioo/internal/domain"
)

func TestLoad_AbsentFile(t *testing.T) {
	f := NewFile(t.TempDir())
	if got, ok := f.Load(); ok || got != nil {
		t.Fatalf("absent snapshot must be a clean miss, got %v %v", got, ok)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, placesFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := NewFile(dir).Load(); ok {
		t.Fatalf("corrupt snapshot must be a miss, not an error")
	}
}

func TestLoad_EmptyList(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, placesFile), []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := NewFile(dir).Load(); ok {
		t.Fatalf("empty snapshot must fall back to seed")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nested")) // Save must create the dir
	in := []domain.Place{
		{
			ID:       "pmsp",
			Name:     "Поликлиника",
			Status:   domain.StatusPartial,
			Lat:      43.238,
			Lng:      76.889,
			Supports: []domain.Category{domain.CatWheelchair},
		},
		{ID: "park", Name: "Парк", Status: domain.StatusAccessible, Lat: 43.24, Lng: 76.92},
	}
	if err := f.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := f.Load()
	if !ok || len(got) != 2 {
		t.Fatalf("load after save: %v %v", got, ok)
	}
	if got[0].ID != "pmsp" || got[0].Status != domain.StatusPartial || got[1].Name != "Парк" {
		t.Fatalf("round trip mangled data: %+v", got)
	}
	if len(got[0].Supports) != 1 || got[0].Supports[0] != domain.CatWheelchair {
		t.Fatalf("supports lost: %+v", got[0])
	}
}

func TestSave_OverwritesPrevious(t *testing.T) {
	f := NewFile(t.TempDir())
	if err := f.Save([]domain.Place{{ID: "a", Name: "A", Status: domain.StatusNot, Lat: 1, Lng: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := f.Save([]domain.Place{{ID: "b", Name: "B", Status: domain.StatusNot, Lat: 1, Lng: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := f.Load()
	if !ok || len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("second save must replace the first: %v %v", got, ok)
	}
}
