package domain

// PlaceStatus is the overall accessibility verdict shown on the map pin.
type PlaceStatus string

const (
	StatusAccessible PlaceStatus = "accessible"
	StatusPartial    PlaceStatus = "partial"
	StatusNot        PlaceStatus = "not"
)

func (s PlaceStatus) Valid() bool {
	switch s {
	case StatusAccessible, StatusPartial, StatusNot:
		return true
	}
	return false
}

// Category identifies a disability-related user group.
type Category string

const (
	CatWheelchair   Category = "wheelchair"
	CatMotor        Category = "motor"
	CatTemporary    Category = "temporary"
	CatIntellectual Category = "intellectual"
	CatVision       Category = "vision"
	CatHearing      Category = "hearing"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CatWheelchair, CatMotor, CatTemporary, CatIntellectual, CatVision, CatHearing,
}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coords) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// PlacePhotos groups photo URLs by what they show.
type PlacePhotos struct {
	Outside       []string `json:"outside,omitempty"`
	Accessibility []string `json:"accessibility,omitempty"`
}

type Place struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"` // human label ("Поликлиника"), not a Category id
	Status   PlaceStatus `json:"status"`
	Lat      float64     `json:"lat"`
	Lng      float64     `json:"lng"`
	Address  string      `json:"address"`
	Details  []string    `json:"details"`

	// Supports lists the user categories the place is known to serve.
	// nil/empty means "unknown": such places pass every category filter.
	Supports []Category   `json:"supports,omitempty"`
	Photos   *PlacePhotos `json:"photos,omitempty"`

	// Scores is a static snapshot from the seed list; live averages come
	// from the ratings store.
	Scores map[Category]int `json:"scores,omitempty"`
}

// SupportsAll reports whether every selected category appears in the place's
// supports list. Places without supports data pass unconditionally.
func (p Place) SupportsAll(cats []Category) bool {
	if len(cats) == 0 || len(p.Supports) == 0 {
		return true
	}
	for _, want := range cats {
		found := false
		for _, have := range p.Supports {
			if want == have {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (p Place) Validate() error {
	if p.ID == "" {
		return ErrBadPlace
	}
	if !p.Status.Valid() {
		return ErrBadStatus
	}
	if !(Coords{Lat: p.Lat, Lng: p.Lng}).Valid() {
		return ErrBadCoords
	}
	return nil
}

// PlacePatch is a field-level mutation; nil fields are left untouched.
type PlacePatch struct {
	Name     *string      `json:"name,omitempty"`
	Category *string      `json:"category,omitempty"`
	Status   *PlaceStatus `json:"status,omitempty"`
	Lat      *float64     `json:"lat,omitempty"`
	Lng      *float64     `json:"lng,omitempty"`
	Address  *string      `json:"address,omitempty"`
	Details  []string     `json:"details,omitempty"`
	Supports []Category   `json:"supports,omitempty"`
}

// StatusFilter is a PlaceStatus or "all".
type StatusFilter string

const FilterAll StatusFilter = "all"

func (f StatusFilter) Valid() bool {
	return f == FilterAll || PlaceStatus(f).Valid()
}

// Matches reports whether a place passes the status filter.
func (f StatusFilter) Matches(s PlaceStatus) bool {
	return f == FilterAll || PlaceStatus(f) == s
}
