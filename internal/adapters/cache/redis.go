package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const connectTimeout = 5 * time.Second

type RedisOptions struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

func (o RedisOptions) Addr() string {
	host, port := o.Host, o.Port
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "6379"
	}
	return net.JoinHostPort(host, port)
}

// NewRedisClient dials Redis and pings it once. The client is shared by the
// key-value store and the rate limiter.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	poolSize := opts.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr(),
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     poolSize,
		MinIdleConns: poolSize / 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr(), err)
	}

	log.Infof("[CACHE] connected to redis at %s (db %d)", opts.Addr(), opts.DB)
	return rdb, nil
}
