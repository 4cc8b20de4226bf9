// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router maps client paths to handlers.
//
// Resolution is first-match-wins: an exact match on a registered key, then
// parameterised patterns in registration order, then the root route "/".
// Every navigation gets a new generation number; work started by a handler
// can compare its generation with [Router.IsCurrent] and drop its result once
// the user has navigated elsewhere.
package router

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/match-point/internal/logger"
)

// Well-known paths.
const (
	RootPath  = "/"
	LoginPath = "/login"
)

// Params maps parameter names to the path segments they captured.
type Params map[string]string

// Request describes one navigation as seen by a handler.
type Request struct {
	// Path is the navigated path.
	Path string
	// Params holds captured parameters; empty for exact and root matches.
	Params Params
	// Generation identifies this navigation.
	Generation uint64
}

// Param returns the named parameter or "".
func (r Request) Param(name string) string {
	return r.Params[name]
}

// Handler reacts to a navigation. A returned error is passed back to the
// caller of the navigation method unchanged.
type Handler func(req Request) error

// Navigator is anything that can move the client to another path.
type Navigator interface {
	Navigate(path string) error
}

type route struct {
	pattern pattern
	handler Handler
}

// Router is the route table plus navigation state. Its methods are safe for
// concurrent use, and handlers may navigate again from inside a handler.
type Router struct {
	mu sync.Mutex

	exact    map[string]*route
	patterns []*route
	started  bool

	history    *History
	current    string
	generation uint64

	logger *logger.Logger
}

// New returns a router with an empty table.
func New(log *logger.Logger) *Router {
	return &Router{
		exact:   make(map[string]*route),
		history: NewHistory(),
		logger:  log.GetChildLogger("router"),
	}
}

// Handle registers h under path. Keys are unique, and the table is frozen by
// [Router.Start].
func (r *Router) Handle(path string, h Handler) error {
	if h == nil {
		return fmt.Errorf("%w: nil handler for %q", ErrInvalidPattern, path)
	}

	p, err := compilePattern(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return fmt.Errorf("%w: cannot register %q", ErrRouterStarted, path)
	}
	if _, exists := r.exact[path]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, path)
	}

	rt := &route{pattern: p, handler: h}
	r.exact[path] = rt
	if p.hasParams() {
		r.patterns = append(r.patterns, rt)
	}
	return nil
}

// Start freezes the route table and resolves path as the initial location.
func (r *Router) Start(path string) error {
	r.mu.Lock()
	r.started = true
	r.mu.Unlock()

	return r.Replace(path)
}

// Navigate pushes path onto history and resolves it.
func (r *Router) Navigate(path string) error {
	return r.navigate(path, (*History).Push)
}

// Replace resolves path in place of the current history entry.
func (r *Router) Replace(path string) error {
	return r.navigate(path, (*History).Replace)
}

// Back re-resolves the previous history entry.
func (r *Router) Back() error {
	return r.travel((*History).Back)
}

// Forward re-resolves the next history entry.
func (r *Router) Forward() error {
	return r.travel((*History).Forward)
}

func (r *Router) navigate(path string, record func(*History, string)) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	r.mu.Lock()
	record(r.history, path)
	req, rt := r.resolveLocked(path)
	r.mu.Unlock()

	return r.dispatch(req, rt)
}

func (r *Router) travel(move func(*History) (string, bool)) error {
	r.mu.Lock()
	path, ok := move(r.history)
	if !ok {
		r.mu.Unlock()
		return ErrNoHistory
	}
	req, rt := r.resolveLocked(path)
	r.mu.Unlock()

	return r.dispatch(req, rt)
}

// resolveLocked records path as current, starts a new generation and picks
// the handler. rt is nil when nothing matches.
func (r *Router) resolveLocked(path string) (Request, *route) {
	r.current = path
	r.generation++
	req := Request{Path: path, Params: Params{}, Generation: r.generation}

	if rt, ok := r.exact[path]; ok {
		return req, rt
	}

	for _, rt := range r.patterns {
		if params, ok := rt.pattern.match(path); ok {
			req.Params = params
			return req, rt
		}
	}

	if rt, ok := r.exact[RootPath]; ok {
		return req, rt
	}
	return req, nil
}

// dispatch runs the handler outside the lock.
func (r *Router) dispatch(req Request, rt *route) error {
	if rt == nil {
		r.logger.Warn().
			Str("path", req.Path).
			Uint64("generation", req.Generation).
			Msg("no route matches path and no root route is registered")
		return fmt.Errorf("%w: %q", ErrNoRoute, req.Path)
	}

	r.logger.Debug().
		Str("path", req.Path).
		Str("route", rt.pattern.raw).
		Uint64("generation", req.Generation).
		Msg("navigate")

	return rt.handler(req)
}

// Current returns the most recently resolved path.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Generation returns the number of the latest navigation.
func (r *Router) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// IsCurrent reports whether gen is still the latest navigation.
func (r *Router) IsCurrent(gen uint64) bool {
	return r.Generation() == gen
}

func (r *Router) CanGoBack() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.CanGoBack()
}

func (r *Router) CanGoForward() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.CanGoForward()
}
