// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

// Authenticator answers whether a session is currently held.
type Authenticator interface {
	IsAuthenticated() bool
}

// RequireAuth wraps h so that it only runs for an authenticated session.
// Otherwise the current history entry is replaced by [LoginPath] and the
// original request, parameters included, is dropped. Remembering where the
// user wanted to go is up to the pages.
func (r *Router) RequireAuth(auth Authenticator, h Handler) Handler {
	return func(req Request) error {
		if !auth.IsAuthenticated() {
			r.logger.Debug().Str("path", req.Path).Msg("unauthenticated, redirecting to login")
			return r.Replace(LoginPath)
		}
		return h(req)
	}
}
