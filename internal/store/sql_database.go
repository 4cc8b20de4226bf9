// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/migrations"
	sq "github.com/Masterminds/squirrel"
)

// ErrorClassificator decides whether a failed statement is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a SQL connection together with the dialect details the key/value
// storage needs: the goose dialect, the squirrel placeholder format and the
// driver-specific error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder bound to the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// pingOrClose verifies conn and closes it when it does not answer.
func pingOrClose(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		return errors.Join(err, conn.Close())
	}
	return nil
}
