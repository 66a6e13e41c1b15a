package main

import (
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"invisioo/internal/adapters/assist"
	server "invisioo/internal/adapters/http_server"
	"invisioo/internal/adapters/identity"
	"invisioo/internal/adapters/observability"
	redisad "invisioo/internal/adapters/redis"
	"invisioo/internal/adapters/snapshot"
	"invisioo/internal/adapters/vacancy"
	"invisioo/internal/app"
	"invisioo/internal/shared"
	mysqlrepo "invisioo/internal/storage/mysql"
	"invisioo/internal/storage/placestore"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	places := placestore.New(shared.SeedPlaces, snapshot.NewFile(cfg.SnapshotDir), cfg.EditMode)

	ai, err := assist.New(cfg.AssistBase, cfg.AssistKey, cfg.AssistModel, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize assistant client")
	}

	h := &server.Handlers{
		Places: places,
		Q:      app.NewQueryService(repo, cache, cfg.CacheTTL),
		C:      app.NewCommandService(repo, cache),
		Chat:   app.NewChatService(ai),
		Route:  app.NewRouteService(ai, places),
		Vac:    app.NewVacancyService(shared.SeedVacancies, vacancy.New()),
		Prefs:  app.NewPrefsService(cache),
		Ident:  identity.New(cfg.JWTSecret),
	}

	// http
	srv := server.New(cfg.CORSOrigins)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Bool("edit_mode", cfg.EditMode).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	// flush any pending place snapshot on shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		places.Flush()
		_ = httpSrv.Close()
	}()

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
