// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
)

// NewClientStorage initialises durable client storage using the supplied
// configuration. The backend is chosen from the DSN:
//   - "memory" or ":memory:": [NewMemoryLocalStorage];
//   - "redis://" or "rediss://": Redis;
//   - "postgres://" or "postgresql://": PostgreSQL, migrated on open;
//   - anything else: a SQLite file path, migrated on open.
func NewClientStorage(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (LocalStorage, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	logger.Info().Str("backend", BackendName(dsn)).Msg("creating client storage...")

	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case dsn == "memory" || dsn == ":memory:":
		return NewMemoryLocalStorage(), nil
	case strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://"):
		rdb, err := NewConnectRedis(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return NewRedisLocalStorage(rdb, logger), nil
	}

	var (
		db  *DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLLocalStorage(db, logger), nil
}

// BackendName names the storage backend NewClientStorage picks for dsn.
func BackendName(dsn string) string {
	switch {
	case dsn == "memory" || dsn == ":memory:":
		return "memory"
	case strings.HasPrefix(dsn, "redis"):
		return "redis"
	case strings.HasPrefix(dsn, "postgres"):
		return "postgres"
	default:
		return "sqlite"
	}
}
