package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"invisioo/internal/adapters/identity"
	"invisioo/internal/adapters/observability"
	"invisioo/internal/app"
	"invisioo/internal/domain"
	"invisioo/internal/storage/placestore"
)

type Handlers struct {
	Places *placestore.Store
	Q      *app.QueryService
	C      *app.CommandService
	Chat   *app.ChatService
	Route  *app.RouteService
	Vac    *app.VacancyService
	Prefs  *app.PrefsService
	Ident  *identity.Provider
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/places", h.listPlaces)
	s.mux.Post("/v1/places", h.addPlace)
	s.mux.Get("/v1/places/{id}", h.getPlace)
	s.mux.Patch("/v1/places/{id}", h.patchPlace)
	s.mux.Delete("/v1/places/{id}", h.removePlace)

	s.mux.Get("/v1/places/{id}/reviews", h.listReviews)
	s.mux.Post("/v1/places/{id}/reviews", h.addReview)

	s.mux.Get("/v1/ratings", h.getRatings)
	s.mux.Post("/v1/ratings", h.submitRating)

	s.mux.Post("/v1/chat", h.chat)
	s.mux.Post("/v1/route-assist", h.routeAssist)

	s.mux.Get("/v1/vacancies", h.listVacancies)
	s.mux.Post("/v1/vacancies/fetch", h.fetchVacancy)

	s.mux.Get("/v1/prefs", h.getPrefs)
	s.mux.Put("/v1/prefs", h.putPrefs)
}

// ---- helpers ----

func writeProblem(w http.ResponseWriter, status int, code, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: http.StatusText(status), Status: status, Code: code, Detail: detail}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps sentinel domain errors onto HTTP statuses and codes.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", "place not found")
	case errors.Is(err, domain.ErrBadPlace):
		writeProblem(w, http.StatusBadRequest, "bad_place", "placeId is required")
	case errors.Is(err, domain.ErrBadScore):
		writeProblem(w, http.StatusBadRequest, "bad_score", "score must be between 1 and 10")
	case errors.Is(err, domain.ErrBadCategory):
		writeProblem(w, http.StatusBadRequest, "bad_category", "unknown accessibility category")
	case errors.Is(err, domain.ErrBadStatus):
		writeProblem(w, http.StatusBadRequest, "bad_status", "status must be accessible, partial or not")
	case errors.Is(err, domain.ErrBadCoords):
		writeProblem(w, http.StatusBadRequest, "bad_coords", "coordinates out of range")
	case errors.Is(err, domain.ErrBadReview):
		writeProblem(w, http.StatusBadRequest, "bad_review", "review needs text and a 1-5 rating")
	case errors.Is(err, domain.ErrNoIdentity):
		writeProblem(w, http.StatusBadRequest, "no_identity", "could not determine the submitting user")
	case errors.Is(err, domain.ErrEditDisabled):
		writeProblem(w, http.StatusForbidden, "edit_disabled", "edit mode is disabled")
	case errors.Is(err, domain.ErrDuplicateID):
		writeProblem(w, http.StatusConflict, "duplicate_id", "a place with this id already exists")
	case errors.Is(err, domain.ErrBadURL):
		writeProblem(w, http.StatusBadRequest, "bad_url", "url must be absolute http(s)")
	default:
		writeProblem(w, http.StatusInternalServerError, "db_error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON body failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func parseCats(raw string) ([]domain.Category, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []domain.Category
	for _, part := range strings.Split(raw, ",") {
		c := domain.Category(strings.TrimSpace(part))
		if c == "" {
			continue
		}
		if !c.Valid() {
			return nil, domain.ErrBadCategory
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "request body is not valid JSON")
		return false
	}
	return true
}

// ---- places ----

type placesResponse struct {
	Items  []domain.Place `json:"items"`
	Center *domain.Coords `json:"center,omitempty"`
}

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := domain.StatusFilter(q.Get("status"))
	if status != "" && !status.Valid() {
		writeProblem(w, http.StatusBadRequest, "bad_status", "status must be all, accessible, partial or not")
		return
	}
	cats, err := parseCats(q.Get("cats"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	query := q.Get("q")

	visible := app.FilterPlaces(h.Places.List(), app.PlaceFilter{
		Status:     status,
		Query:      query,
		Categories: cats,
	})
	resp := placesResponse{Items: visible, Center: app.CenterHint(visible, query)}

	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listPlaces body")
	}
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	p, err := h.Places.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type addPlaceRequest struct {
	domain.Place
	// AtCoordinate requests a placeholder place at (lat, lng) instead of a
	// fully specified one (the click-to-add flow).
	AtCoordinate bool `json:"atCoordinate,omitempty"`
}

func (h *Handlers) addPlace(w http.ResponseWriter, r *http.Request) {
	var req addPlaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AtCoordinate || req.ID == "" {
		p, err := h.Places.AddAt(req.Lat, req.Lng)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
		return
	}
	if err := h.Places.Add(req.Place); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req.Place)
}

func (h *Handlers) patchPlace(w http.ResponseWriter, r *http.Request) {
	var patch domain.PlacePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := h.Places.Patch(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) removePlace(w http.ResponseWriter, r *http.Request) {
	if err := h.Places.Remove(chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "bad_limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}
	out, err := h.Q.ListReviews(r.Context(), id, limit)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if out.Items == nil {
		out.Items = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, out)
}

type addReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Places.Get(id); err != nil {
		writeDomainErr(w, err)
		return
	}
	var req addReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rv, err := h.C.AddReview(r.Context(), id, strings.TrimSpace(req.Text), req.Rating)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

// ---- ratings ----

type ratingsResponse struct {
	Ratings map[domain.Category]domain.CategoryStats `json:"ratings"`
}

func (h *Handlers) getRatings(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("placeId")
	if placeID == "" {
		writeProblem(w, http.StatusBadRequest, "bad_place", "placeId is required")
		return
	}
	stats, err := h.Q.GetRatings(r.Context(), placeID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratingsResponse{Ratings: stats})
}

type submitRatingRequest struct {
	PlaceID  string          `json:"placeId"`
	Category domain.Category `json:"category"`
	Score    int             `json:"score"`
}

func (h *Handlers) submitRating(w http.ResponseWriter, r *http.Request) {
	var req submitRatingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PlaceID == "" {
		writeProblem(w, http.StatusBadRequest, "bad_place", "placeId, category, score are required")
		return
	}
	userID := h.Ident.Resolve(w, r)
	stats, err := h.C.SubmitRating(r.Context(), domain.CategoryRating{
		PlaceID:  req.PlaceID,
		Category: req.Category,
		Score:    req.Score,
		UserID:   userID,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	observability.ObserveRating(string(req.Category))
	writeJSON(w, http.StatusOK, ratingsResponse{Ratings: stats})
}

// ---- chat / route assistant ----

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req app.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	reply, err := h.Chat.Reply(r.Context(), req)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "empty_chat", "no messages provided")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *Handlers) routeAssist(w http.ResponseWriter, r *http.Request) {
	var req app.RouteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	plan, err := h.Route.Plan(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrBadCategory) || errors.Is(err, domain.ErrBadCoords) {
			writeDomainErr(w, err)
			return
		}
		writeProblem(w, http.StatusBadGateway, "route_failed",
			"Не удалось построить маршрут. Попробуйте открыть в Google Maps.")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// ---- vacancies ----

func (h *Handlers) listVacancies(w http.ResponseWriter, r *http.Request) {
	cats, err := parseCats(r.URL.Query().Get("cats"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.Vac.List(cats)})
}

type fetchVacancyRequest struct {
	URL string `json:"url"`
}

func (h *Handlers) fetchVacancy(w http.ResponseWriter, r *http.Request) {
	var req fetchVacancyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	text, err := h.Vac.FetchText(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrBadURL) {
			writeDomainErr(w, err)
			return
		}
		log.Warn().Err(err).Str("url", req.URL).Msg("vacancy fetch failed")
		writeProblem(w, http.StatusBadGateway, "fetch_failed", "Не удалось загрузить вакансию.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// ---- UI preference snapshots ----

func (h *Handlers) getPrefs(w http.ResponseWriter, r *http.Request) {
	userID := h.Ident.Resolve(w, r)
	writeJSON(w, http.StatusOK, h.Prefs.Get(r.Context(), userID))
}

func (h *Handlers) putPrefs(w http.ResponseWriter, r *http.Request) {
	var st domain.UIState
	if !decodeBody(w, r, &st) {
		return
	}
	userID := h.Ident.Resolve(w, r)
	if err := h.Prefs.Put(r.Context(), userID, st); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
