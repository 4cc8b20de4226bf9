// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import "errors"

var (
	// ErrNoRoute is returned by navigation when nothing matches the path and
	// no root route is registered.
	ErrNoRoute = errors.New("no route matches path")

	// ErrInvalidPattern is returned by Handle for a path template that cannot
	// be compiled.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrDuplicateRoute is returned by Handle when the key is already taken.
	ErrDuplicateRoute = errors.New("route already registered")

	// ErrRouterStarted is returned by Handle after Start: the route table is
	// immutable from then on.
	ErrRouterStarted = errors.New("router already started")

	// ErrInvalidPath is returned for navigation targets not starting with "/".
	ErrInvalidPath = errors.New("path must start with /")

	// ErrNoHistory is returned by Back and Forward at either end of history.
	ErrNoHistory = errors.New("no history entry in that direction")
)
