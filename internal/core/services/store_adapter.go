package services

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

// StoreAdapter wraps a KVStore with JSON encoding. It never returns store
// errors: failures are logged and counted, and callers fall back to their
// default values.
type StoreAdapter struct {
	store   domain.KVStore
	metrics *metrics.Manager
}

func NewStoreAdapter(store domain.KVStore, m *metrics.Manager) *StoreAdapter {
	return &StoreAdapter{
		store:   store,
		metrics: m,
	}
}

func (a *StoreAdapter) fail(op, key string, err error) {
	log.WithFields(log.Fields{"op": op, "key": key}).Warnf("[STORE] %v", err)
	if a.metrics != nil {
		a.metrics.CounterStoreFailures.WithLabelValues(op, key).Inc()
	}
}

// Load decodes the value at key into dst and reports whether it did.
// dst is left untouched when the key is absent or unreadable.
func (a *StoreAdapter) Load(ctx context.Context, key string, dst any) bool {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			a.fail("load", key, err)
		}
		return false
	}
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		a.fail("decode", key, err)
		return false
	}
	return true
}

func (a *StoreAdapter) Save(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		a.fail("encode", key, err)
		return false
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		a.fail("save", key, err)
		return false
	}
	return true
}

// SaveAll writes every value in one store call so no partial state is
// ever visible. Nothing is written if any value fails to encode.
func (a *StoreAdapter) SaveAll(ctx context.Context, values map[string]any) bool {
	encoded := make(map[string][]byte, len(values))
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			a.fail("encode", key, err)
			return false
		}
		encoded[key] = raw
	}
	if err := a.store.SetMany(ctx, encoded); err != nil {
		for key := range values {
			a.fail("save", key, err)
		}
		return false
	}
	return true
}

func (a *StoreAdapter) Delete(ctx context.Context, key string) bool {
	if err := a.store.Delete(ctx, key); err != nil {
		a.fail("delete", key, err)
		return false
	}
	return true
}

func (a *StoreAdapter) Ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}
