package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"invisioo/internal/domain"
)

// RouteRequest carries the rider profile, the endpoints and the target place.
type RouteRequest struct {
	Profile domain.RouteProfile `json:"profile"`
	From    domain.Coords       `json:"from"`
	To      domain.Coords       `json:"to"`
	PlaceID string              `json:"placeId,omitempty"`
}

// RouteService asks the generative assistant for an accessible route
// description tailored to the rider profile.
type RouteService struct {
	assistant domain.Assistant
	places    PlaceReader
}

// PlaceReader is the slice of the place store the route service needs.
type PlaceReader interface {
	Get(id string) (domain.Place, error)
}

func NewRouteService(a domain.Assistant, places PlaceReader) *RouteService {
	return &RouteService{assistant: a, places: places}
}

// Plan builds the prompt, calls the assistant and decorates the answer with
// the profile line color and, for the vision profile, a spoken summary of up
// to the first five steps. A non-JSON assistant answer is wrapped whole into
// the description rather than rejected.
func (s *RouteService) Plan(ctx context.Context, req RouteRequest) (domain.RoutePlan, error) {
	profile := req.Profile
	if profile == "" {
		profile = domain.ProfileNone
	}
	if !profile.Valid() {
		return domain.RoutePlan{}, domain.ErrBadCategory
	}
	if !req.From.Valid() || !req.To.Valid() {
		return domain.RoutePlan{}, domain.ErrBadCoords
	}

	placeName := "Неизвестно"
	var details []string
	if req.PlaceID != "" && s.places != nil {
		if p, err := s.places.Get(req.PlaceID); err == nil {
			placeName = p.Name
			details = p.Details
		}
	}

	prompt := buildRoutePrompt(profile, req.From, req.To, placeName, details)
	raw, err := s.assistant.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("profile", string(profile)).Msg("route assistant failed")
		return domain.RoutePlan{}, err
	}

	var plan domain.RoutePlan
	if jerr := json.Unmarshal([]byte(extractJSON(raw)), &plan); jerr != nil {
		plan = domain.RoutePlan{Description: strings.TrimSpace(raw), Steps: []string{}}
	}
	if plan.Steps == nil {
		plan.Steps = []string{}
	}
	plan.Color = profile.LineColor()
	if profile == domain.ProfileVision {
		plan.Speech = domain.SpeechSummary(plan.Steps)
	}
	return plan, nil
}

func buildRoutePrompt(profile domain.RouteProfile, from, to domain.Coords, place string, details []string) string {
	fromJSON, _ := json.Marshal(from)
	toJSON, _ := json.Marshal(to)
	return fmt.Sprintf(`Ты — ассистент по инклюзивной навигации в городе Алматы.
Нужно предложить максимально безопасный, удобный маршрут для: %s.

Исходные координаты пользователя: %s
Цель: %s
Место: %s
Характеристики места: %s

Учитывай:
- минимум лестниц и высоких бордюров
- ровные тротуары
- наличие пандусов и лифтов (если указаны)
- освещение и безопасность по ощущениям
- предпочтительно спокойные улицы

Ответ верни СТРОГО в JSON-формате без пояснений, вот структура:
{
  "description": "Общее текстовое описание маршрута простым понятным языком (2-6 предложений)",
  "steps": ["Шаг 1...", "Шаг 2...", "Шаг 3..."]
}`,
		profile.Label(), fromJSON, toJSON, place, strings.Join(details, ", "))
}

// extractJSON trims common model wrapping (markdown fences, prose around one
// object) so a well-formed answer still parses.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
