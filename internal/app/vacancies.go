package app

import (
	"context"
	"net/url"

	"invisioo/internal/domain"
)

// VacancyService serves the curated listing and best-effort text extraction
// of external listing pages.
type VacancyService struct {
	list    []domain.Vacancy
	fetcher domain.VacancyFetcher
}

func NewVacancyService(list []domain.Vacancy, f domain.VacancyFetcher) *VacancyService {
	return &VacancyService{list: list, fetcher: f}
}

// List filters the curated vacancies down to those suitable for at least one
// selected category. No selection returns the full listing.
func (s *VacancyService) List(cats []domain.Category) []domain.Vacancy {
	if len(cats) == 0 {
		return append([]domain.Vacancy(nil), s.list...)
	}
	out := make([]domain.Vacancy, 0, len(s.list))
	for _, v := range s.list {
		if v.SuitsAny(cats) {
			out = append(out, v)
		}
	}
	return out
}

// FetchText pulls the plain-text body of an external listing URL.
func (s *VacancyService) FetchText(ctx context.Context, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", domain.ErrBadURL
	}
	return s.fetcher.FetchText(ctx, raw)
}
