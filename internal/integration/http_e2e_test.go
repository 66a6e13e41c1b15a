//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "invisioo/internal/adapters/http_server"
	"invisioo/internal/adapters/identity"
	redisad "invisioo/internal/adapters/redis"
	"invisioo/internal/app"
	"invisioo/internal/domain"
	"invisioo/internal/shared"
	mysqlrepo "invisioo/internal/storage/mysql"
	"invisioo/internal/storage/placestore"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

type nullSnap struct{}

func (nullSnap) Load() ([]domain.Place, bool)     { return nil, false }
func (nullSnap) Save(places []domain.Place) error { return nil }

type nullAssistant struct{}

func (nullAssistant) Chat(ctx context.Context, msgs []domain.ChatMessage) (string, error) {
	return "ок", nil
}

func (nullAssistant) Generate(ctx context.Context, prompt string) (string, error) {
	return `{"description":"d","steps":[]}`, nil
}

type nullFetcher struct{}

func (nullFetcher) FetchText(ctx context.Context, url string) (string, error) { return "", nil }

// TestHTTP_EndToEnd_Ratings drives the real router against a containerized
// MySQL and an embedded Redis: one browser identity submits, corrects and
// rereads a rating, then another identity widens the aggregate.
func TestHTTP_EndToEnd_Ratings(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=invisioo",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "invisioo")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	repo := mysqlrepo.New(db)
	places := placestore.New(shared.SeedPlaces, nullSnap{}, false)

	h := &httpserver.Handlers{
		Places: places,
		Q:      app.NewQueryService(repo, cache, time.Minute),
		C:      app.NewCommandService(repo, cache),
		Chat:   app.NewChatService(nullAssistant{}),
		Route:  app.NewRouteService(nullAssistant{}, places),
		Vac:    app.NewVacancyService(shared.SeedVacancies, nullFetcher{}),
		Prefs:  app.NewPrefsService(cache),
		Ident:  identity.New("e2e-secret"),
	}
	srv := httpserver.New(nil)
	srv.MountHandlers(h)
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	post := func(cookie *http.Cookie, body map[string]any) (*http.Response, error) {
		b, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/v1/ratings", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		if cookie != nil {
			req.AddCookie(cookie)
		}
		return http.DefaultClient.Do(req)
	}
	decodeStats := func(res *http.Response) map[domain.Category]domain.CategoryStats {
		defer res.Body.Close()
		var out struct {
			Ratings map[domain.Category]domain.CategoryStats `json:"ratings"`
		}
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return out.Ratings
	}

	// first submit mints the identity cookie
	res, err := post(nil, map[string]any{"placeId": "atakent_mall", "category": "wheelchair", "score": 9})
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == identity.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("no identity cookie issued")
	}
	if s := decodeStats(res)[domain.CatWheelchair]; s.Avg != 9 || s.Count != 1 {
		t.Fatalf("first submit: %+v", s)
	}

	// same identity corrects the score: the row is overwritten
	res, err = post(cookie, map[string]any{"placeId": "atakent_mall", "category": "wheelchair", "score": 6})
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if s := decodeStats(res)[domain.CatWheelchair]; s.Avg != 6 || s.Count != 1 {
		t.Fatalf("upsert must overwrite: %+v", s)
	}

	// a second identity widens the aggregate
	res, err = post(nil, map[string]any{"placeId": "atakent_mall", "category": "wheelchair", "score": 8})
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if s := decodeStats(res)[domain.CatWheelchair]; s.Avg != 7 || s.Count != 2 {
		t.Fatalf("second identity: %+v", s)
	}

	// the aggregate survives a cold cache
	mr.FlushAll()
	res, err = http.Get(ts.URL + "/v1/ratings?placeId=atakent_mall")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if s := decodeStats(res)[domain.CatWheelchair]; s.Avg != 7 || s.Count != 2 {
		t.Fatalf("cold read: %+v", s)
	}
}

func TestHTTP_EndToEnd_Reviews(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=invisioo"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/invisioo?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	repo := mysqlrepo.New(db)
	places := placestore.New(shared.SeedPlaces, nullSnap{}, false)

	h := &httpserver.Handlers{
		Places: places,
		Q:      app.NewQueryService(repo, cache, time.Minute),
		C:      app.NewCommandService(repo, cache),
		Chat:   app.NewChatService(nullAssistant{}),
		Route:  app.NewRouteService(nullAssistant{}, places),
		Vac:    app.NewVacancyService(shared.SeedVacancies, nullFetcher{}),
		Prefs:  app.NewPrefsService(cache),
		Ident:  identity.New("e2e-secret"),
	}
	srv := httpserver.New(nil)
	srv.MountHandlers(h)
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	for _, text := range []string{"Первый", "Второй"} {
		b, _ := json.Marshal(map[string]any{"rating": 5, "text": text})
		res, err := http.Post(ts.URL+"/v1/places/atakent_mall/reviews", "application/json", bytes.NewReader(b))
		if err != nil {
			t.Fatalf("POST review: %v", err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("status %d", res.StatusCode)
		}
	}

	res, err := http.Get(ts.URL + "/v1/places/atakent_mall/reviews?limit=1")
	if err != nil {
		t.Fatalf("GET reviews: %v", err)
	}
	defer res.Body.Close()
	var page domain.ReviewsPage
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("limit not applied: %+v", page)
	}
	if page.Items[0].Author != "Анонимно" {
		t.Fatalf("author: %+v", page.Items[0])
	}
}
