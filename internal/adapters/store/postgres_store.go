package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ domain.KVStore = (*PostgresStore)(nil)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the key-value table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create kv_store table: %w", mapPostgresError(err))
	}
	return nil
}

type kvRow struct {
	Value []byte `db:"value"`
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row kvRow
	err := s.db.GetContext(ctx, &row, `SELECT value FROM kv_store WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get %s: %w", key, mapPostgresError(err))
	}
	return row.Value, nil
}

const upsertQuery = `
    INSERT INTO kv_store (key, value, updated_at)
    VALUES ($1, $2, NOW())
    ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("postgres set %s: %w", key, mapPostgresError(err))
	}
	return nil
}

func (s *PostgresStore) SetMany(ctx context.Context, values map[string][]byte) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres begin: %w", mapPostgresError(err))
	}
	defer tx.Rollback()

	// fixed order keeps concurrent writers from deadlocking on row locks
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertQuery, k, values[k]); err != nil {
			return fmt.Errorf("postgres set %s: %w", k, mapPostgresError(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres commit: %w", mapPostgresError(err))
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("postgres delete %s: %w", key, mapPostgresError(err))
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Class 08 is connection exceptions, 57P0x are shutdown/cannot-connect.
func isUnavailableCode(code string) bool {
	return len(code) == 5 && (code[:2] == "08" || code[:4] == "57P0")
}

// mapPostgresError tags connection-level failures with ErrStoreUnavailable
// for both the pgx and lib/pq drivers.
func mapPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && isUnavailableCode(pgErr.Code) {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, pgErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && isUnavailableCode(string(pqErr.Code)) {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, pqErr.Message)
	}
	return err
}
