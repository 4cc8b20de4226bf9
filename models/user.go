// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the profile returned by GET /users/me and POST /users/register.
// The server never sends the password hash back; it is not modelled here.
type User struct {
	// ID is the server-side identifier. Older servers omit it and identify
	// users by email only.
	ID string `json:"id,omitempty"`

	// Email is the login identifier sent as "username" to POST /token.
	Email string `json:"email"`

	// Name is the display name shown on the profile page.
	Name string `json:"name,omitempty"`

	// IsActive reports whether the account may log in.
	IsActive bool `json:"is_active"`
}

// DisplayName returns Name when set and falls back to Email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// UserCreate is the JSON body of POST /users/register.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}
