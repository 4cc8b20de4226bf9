// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

// ErrSessionExpired is returned by Init when a persisted token no longer
// yields a profile. The session has been cleared by then.
var ErrSessionExpired = errors.New("session expired")

// AuthError is a failed login. Message is the server's text, unchanged.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RegistrationError is a registration the server rejected, e.g. a duplicate
// email. Message is the server's text, unchanged.
type RegistrationError struct {
	Message string
	Err     error
}

func (e *RegistrationError) Error() string {
	return e.Message
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
