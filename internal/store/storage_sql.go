// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/match-point/internal/logger"
)

const clientStateTable = "client_state"

type sqlLocalStorage struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLLocalStorage returns a [LocalStorage] backed by the client_state table
// of db. The schema must already be migrated.
func NewSQLLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqlLocalStorage{DB: db, logger: logger, now: time.Now}
}

func (s *sqlLocalStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.builder().
		Select("state_value").
		From(clientStateTable).
		Where(sq.Eq{"state_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.Get").
			Str("key", key).
			Msg("failed to query client state")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlLocalStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := s.builder().
		Insert(clientStateTable).
		Columns("state_key", "state_value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT (state_key) DO UPDATE SET state_value = excluded.state_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.Set").
			Str("key", key).
			Msg("failed to upsert client state")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlLocalStorage) Remove(ctx context.Context, key string) error {
	query, args, err := s.builder().
		Delete(clientStateTable).
		Where(sq.Eq{"state_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqlLocalStorage.Remove").
			Str("key", key).
			Msg("failed to delete client state")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// exec runs a statement and retries it once when the driver reports a
// transient failure.
func (s *sqlLocalStorage) exec(ctx context.Context, query string, args ...any) error {
	_, err := s.DB.ExecContext(ctx, query, args...)
	if err == nil || s.errorClassificator == nil || s.errorClassificator.Classify(err) != Retryable {
		return err
	}

	s.logger.Warn().Err(err).Str("func", "sqlLocalStorage.exec").Msg("retrying statement")
	_, err = s.DB.ExecContext(ctx, query, args...)
	return err
}
