// Command seeder pushes the embedded seed score snapshots into the ratings
// store so freshly provisioned databases start with sensible averages.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"invisioo/internal/adapters/observability"
	"invisioo/internal/domain"
	"invisioo/internal/shared"
	mysqlrepo "invisioo/internal/storage/mysql"
)

// seedUserID owns the baseline rows; re-running the seeder overwrites them
// instead of inflating the averages.
const seedUserID = "seed"

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.Workers).
		Int("places", len(shared.SeedPlaces)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, place := range shared.SeedPlaces {
		if len(place.Scores) == 0 {
			continue
		}
		place := place

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(p domain.Place) {
			defer wg.Done()
			defer sem.Release(1)

			for cat, score := range p.Scores {
				r := domain.CategoryRating{
					PlaceID:  p.ID,
					Category: cat,
					Score:    score,
					UserID:   seedUserID,
				}
				if err := r.Validate(); err != nil {
					log.Warn().Str("place", p.ID).Str("category", string(cat)).Err(err).Msg("skipping invalid seed score")
					continue
				}
				if err := repo.UpsertRating(ctx, r); err != nil {
					log.Warn().Str("place", p.ID).Str("category", string(cat)).Err(err).Msg("seed upsert failed")
					return
				}
			}
			log.Info().Str("place", p.ID).Int("scores", len(p.Scores)).Msg("seed ok")
		}(place)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
