package domain

// Vacancy is a curated job listing surfaced alongside the map.
type Vacancy struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Salary      string     `json:"salary"`
	Place       string     `json:"place"`
	Description string     `json:"description"`
	Suitability string     `json:"suitability"`
	Supports    []Category `json:"supports"`
	ApplyURL    string     `json:"applyUrl,omitempty"`
}

// SuitsAny reports whether the vacancy is marked suitable for at least one
// selected category. Unlike the all-match rule places use, a wider selection
// widens the vacancy listing; no selection matches everything.
func (v Vacancy) SuitsAny(cats []Category) bool {
	if len(cats) == 0 {
		return true
	}
	for _, want := range cats {
		for _, have := range v.Supports {
			if want == have {
				return true
			}
		}
	}
	return false
}
