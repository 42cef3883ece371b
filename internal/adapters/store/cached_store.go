package store

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

var _ domain.KVStore = (*CachedStore)(nil)

// CachedStore is a read-through freecache decorator. Writes go to the
// backing store first and refresh the cache only once they succeed.
type CachedStore struct {
	next  domain.KVStore
	cache *freecache.Cache
	ttl   int
}

// NewCachedStore wraps next with an in-process cache of sizeMB megabytes.
// ttlSeconds of zero keeps entries until evicted.
func NewCachedStore(next domain.KVStore, sizeMB, ttlSeconds int) *CachedStore {
	if sizeMB < 1 {
		sizeMB = 1
	}
	return &CachedStore{
		next:  next,
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttlSeconds,
	}
}

func (s *CachedStore) put(key string, value []byte) {
	if err := s.cache.Set([]byte(key), value, s.ttl); err != nil {
		log.Debugf("[CACHE] could not cache %s: %v", key, err)
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if v, err := s.cache.Get([]byte(key)); err == nil {
		return v, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("[CACHE] read error for %s: %v", key, err)
	}

	v, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	s.put(key, v)
	return v, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	s.put(key, value)
	return nil
}

func (s *CachedStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if err := s.next.SetMany(ctx, values); err != nil {
		for k := range values {
			s.cache.Del([]byte(k))
		}
		return err
	}
	for k, v := range values {
		s.put(k, v)
	}
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, key string) error {
	s.cache.Del([]byte(key))
	return s.next.Delete(ctx, key)
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *CachedStore) Close() error {
	s.cache.Clear()
	return s.next.Close()
}

// Stats exposes hit counters for the health endpoint.
func (s *CachedStore) Stats() (hits, misses int64) {
	return s.cache.HitCount(), s.cache.MissCount()
}
