package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-fit/internal/adapters/store"
	"github.com/comitanigiacomo/kanso-fit/internal/config"
	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

const redisKeyPrefix = "kanso_fit:"

func redisOptions(cfg *config.Config) cache.RedisOptions {
	return cache.RedisOptions{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// openStore builds the configured backend. The returned Redis client is
// non-nil only when the backend itself is Redis.
func openStore(ctx context.Context, cfg *config.Config) (domain.KVStore, *redis.Client, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("[STORE] using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), nil, nil

	case config.DriverSQLite:
		s, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("[STORE] sqlite database at %s", cfg.SQLitePath)
		return s, nil, nil

	case config.DriverPostgres:
		log.Info("[STORE] connecting to postgres...")
		db, err := sqlx.Connect("pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)

		s := store.NewPostgresStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("[STORE] postgres connected")
		return s, nil, nil

	case config.DriverRedis:
		rdb, err := cache.NewRedisClient(ctx, redisOptions(cfg))
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb, redisKeyPrefix), rdb, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.StoreDriver)
}

// withCache puts the freecache layer in front of stores that live out of
// process.
func withCache(kv domain.KVStore, cfg *config.Config) domain.KVStore {
	if cfg.StoreDriver == config.DriverMemory || cfg.CacheSizeMB <= 0 {
		return kv
	}
	log.Infof("[CACHE] read-through cache of %d MB enabled", cfg.CacheSizeMB)
	return store.NewCachedStore(kv, cfg.CacheSizeMB, 0)
}

// rateLimitClient returns the Redis client used by the rate limiter, or
// nil when rate limiting is off or Redis cannot be reached.
func rateLimitClient(ctx context.Context, cfg *config.Config, storeClient *redis.Client) *redis.Client {
	if cfg.RateLimit <= 0 {
		return nil
	}
	if storeClient != nil {
		return storeClient
	}
	rdb, err := cache.NewRedisClient(ctx, redisOptions(cfg))
	if err != nil {
		log.Warnf("[RATE] rate limiting disabled: %v", err)
		return nil
	}
	return rdb
}
