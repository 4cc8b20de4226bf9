// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the body returned by POST /token.
type Token struct {
	// AccessToken is the opaque bearer credential attached to authenticated
	// requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for the current server.
	TokenType string `json:"token_type,omitempty"`
}

// TokenClaims is the subset of claims the client can read from an access
// token without verifying its signature. The client never trusts these values
// for authorization decisions; they feed the expiry shown on the profile page
// and let the session watcher skip a round-trip for a token already past exp.
type TokenClaims struct {
	// Subject is the "sub" claim; the server puts the user email there.
	Subject string

	// ExpiresAt is the "exp" claim, or the zero time when absent.
	ExpiresAt time.Time
}

// ParseTokenClaims extracts [TokenClaims] from a JWT access token without
// verifying its signature. Opaque (non-JWT) tokens return an error.
func ParseTokenClaims(accessToken string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, err
	}

	var claims TokenClaims
	if sub, err := token.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// Expired reports whether the claims carry an expiry that lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
