package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	maxWriteAttempts = 3
	writeRetryDelay  = 50 * time.Millisecond
)

type sqlStore struct {
	db  *DB
	now func() time.Time
}

// NewSQLStore returns a KeyValueStore over the kv table of db.
func NewSQLStore(db *DB) KeyValueStore {
	return &sqlStore{db: db, now: time.Now}
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetValueQuery(s.db.dialect, key)
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, s.translate("get", err)
	}

	return []byte(value), nil
}

// Set upserts value, retrying transient driver errors.
func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return ErrInvalidValue
	}

	query, args, err := buildSetValueQuery(s.db.dialect, key, value, s.now())
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = s.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if attempt == maxWriteAttempts || s.db.classify(err) != Retryable {
			return s.translate("set", err)
		}

		s.db.logger.Warn().Err(err).Int("attempt", attempt).Str("key", key).Msg("retrying store write")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(writeRetryDelay * time.Duration(attempt)):
		}
	}
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) translate(op string, err error) error {
	if s.db.classify(err) == SchemaMissing {
		return fmt.Errorf("%s: %w", op, ErrStoreNotMigrated)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrExecutingQuery, err)
}
