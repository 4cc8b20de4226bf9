// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the key/value storage whether a failed statement
// is run a second time.
type ErrorClassification int

const (
	// NonRetryable is the answer for anything not known to be transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks a transient failure such as a dropped connection.
	Retryable
)

// PostgresErrorClassifier is the [ErrorClassificator] of the postgres backend.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify looks for a *pgconn.PgError in the chain of err.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// retryablePgCodes are the SQLSTATEs a token write may survive on a second
// attempt: lost connections, rollbacks and a server still starting up.
var retryablePgCodes = map[string]bool{
	pgerrcode.ConnectionException:    true,
	pgerrcode.ConnectionDoesNotExist: true,
	pgerrcode.ConnectionFailure:      true,
	pgerrcode.TransactionRollback:    true,
	pgerrcode.SerializationFailure:   true,
	pgerrcode.DeadlockDetected:       true,
	pgerrcode.CannotConnectNow:       true,
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if retryablePgCodes[pgErr.Code] {
		return Retryable
	}
	return NonRetryable
}
