package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"procura_uai/internal/adapters/content"
	"procura_uai/internal/adapters/observability"
	redisad "procura_uai/internal/adapters/redis"
	"procura_uai/internal/app"
	"procura_uai/internal/domain"
	"procura_uai/internal/shared"
	mysqlrepo "procura_uai/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.ContentBase).
		Int("workers", cfg.Workers).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := content.New(cfg.ContentBase, cfg.ContentKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ing := app.NewIngestionService(client, repo, cache)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, name := range domain.Collections {
		name := name

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(collection string) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := ing.IngestCollection(ctx, collection); err != nil {
				log.Warn().Str("collection", collection).Err(err).Msg("ingest failed")
				return
			}
			log.Info().Str("collection", collection).Msg("ingest ok")
		}(name)
	}

	wg.Wait()
	log.Info().Msg("ingestion completed")
}
