// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// Well-known keys of the durable client state.
const (
	// KeyToken holds the opaque access token of the current session.
	KeyToken = "token"

	// KeyRedirectAfterLogin holds the path an unauthenticated user tried to
	// open. The login page consumes it once after a successful login.
	KeyRedirectAfterLogin = "redirectAfterLogin"
)

// LocalStorage is durable key/value storage for the little client state that
// must survive a restart. Implementations must be safe for concurrent use.
type LocalStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the underlying connection.
	Close() error
}
