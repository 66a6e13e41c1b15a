// Package snapshot persists the place collection as a JSON file.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"invisioo/internal/domain"
)

const placesFile = "places_v2.json"

type File struct{ dir string }

func NewFile(dir string) *File { return &File{dir: dir} }

func (f *File) path() string { return filepath.Join(f.dir, placesFile) }

// Load reads the snapshot. Absent or unparsable data is reported as ok=false
// so the caller falls back to the seed list; it is never a hard error.
func (f *File) Load() ([]domain.Place, bool) {
	b, err := os.ReadFile(f.path())
	if err != nil {
		return nil, false
	}
	var places []domain.Place
	if err := json.Unmarshal(b, &places); err != nil {
		log.Warn().Err(err).Str("path", f.path()).Msg("discarding corrupt place snapshot")
		return nil, false
	}
	if len(places) == 0 {
		return nil, false
	}
	return places, true
}

// Save writes the full collection atomically (temp file + rename).
func (f *File) Save(places []domain.Place) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(places)
	if err != nil {
		return err
	}
	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path())
}
