// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest is an in-memory stand-in for the tournament REST API. It
// speaks the same paths, bodies and error shapes as the real server so the
// gateway, the session store and the pages can be exercised end to end in
// tests and in local demos.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/utils"
	"github.com/MKhiriev/match-point/models"
)

const (
	tokenIssuer = "match-point-apitest"
	tokenTTL    = time.Hour
)

type account struct {
	user     models.User
	password string
}

// RecordedRequest is what the server saw of one request.
type RecordedRequest struct {
	Method string
	Path   string
	// EscapedPath is the path as it went over the wire.
	EscapedPath   string
	Authorization string
	RequestID     string
	ContentType   string
}

// Server is the fake API. All methods are safe for concurrent use.
type Server struct {
	mu          sync.Mutex
	signKey     string
	accounts    map[string]*account
	revoked     map[string]bool
	tournaments map[string]*models.Tournament
	order       []string
	failures    map[string]failure
	requests    []RecordedRequest
	nextID      int
	logger      *logger.Logger
}

type failure struct {
	status int
	body   string
}

// New returns an empty server.
func New() *Server {
	return &Server{
		signKey:     "apitest-secret",
		accounts:    make(map[string]*account),
		revoked:     make(map[string]bool),
		tournaments: make(map[string]*models.Tournament),
		failures:    make(map[string]failure),
		logger:      logger.Nop(),
	}
}

// SetLogger makes the server log every request to log. Call it before
// serving.
func (s *Server) SetLogger(log *logger.Logger) {
	s.logger = log
}

// Start runs s on a loopback listener that is closed with the test.
func Start(t testing.TB) (*Server, *httptest.Server) {
	t.Helper()
	s := New()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

// Handler returns the chi router serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.withRequestID)
	r.Use(s.withLogging)
	r.Use(s.record)
	r.Use(s.injectFailures)

	r.Post("/token", s.login)
	r.Post("/users/register", s.register)
	r.With(s.requireUser).Get("/users/me", s.me)
	r.With(s.requireUser).Get("/users/logout", s.logout)

	r.Route("/tournaments", func(r chi.Router) {
		r.Get("/by-invite/{code}", s.getByInvite)

		r.Get("/{id}", s.getTournament)
		r.Get("/{id}/participants/", s.listParticipants)
		r.Get("/{id}/matches", s.listMatches)
		r.Get("/{id}/bracket", s.bracket)
		r.Get("/{id}/schedule", s.schedule)
		r.Get("/{id}/standings", s.standings)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Get("/", s.listTournaments)
			r.Post("/", s.createTournament)
			r.Put("/{id}", s.updateTournament)
			r.Delete("/{id}", s.deleteTournament)
			r.Post("/{id}/participants/", s.addParticipant)
			r.Delete("/{id}/participants/{pid}", s.removeParticipant)
			r.Post("/{id}/join_authenticated", s.join)
			r.Post("/{id}/matches/generate", s.generateMatches)
			r.Post("/{id}/matches/{matchID}/result", s.recordResult)
			r.Post("/{id}/generate-playoffs", s.generatePlayoffs)
		})
	})

	return r
}

// AddUser registers an account directly and returns it.
func (s *Server) AddUser(email, password, name string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(email, password, name)
}

func (s *Server) addUserLocked(email, password, name string) models.User {
	u := models.User{ID: s.newIDLocked("u"), Email: email, Name: name, IsActive: true}
	s.accounts[email] = &account{user: u, password: password}
	return u
}

// IssueToken signs a token for email valid for ttl. A negative ttl gives an
// expired token.
func (s *Server) IssueToken(email string, ttl time.Duration) string {
	token, err := utils.GenerateJWTToken(tokenIssuer, email, ttl, s.signKey)
	if err != nil {
		panic(err)
	}
	return token
}

// FailNext makes the next request to method+path answer status with body
// verbatim. The failure is consumed by that request.
func (s *Server) FailNext(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, body: body}
}

// Requests returns a copy of every request seen so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// SetInviteCode replaces the invite code of tournament id.
func (s *Server) SetInviteCode(id, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tournaments[id]
	if !ok {
		return false
	}
	t.InviteCode = code
	t.InvitationLink = "/join/" + url.PathEscape(code)
	return true
}

// Tournament returns a copy of the stored tournament.
func (s *Server) Tournament(id string) (models.Tournament, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tournaments[id]
	if !ok {
		return models.Tournament{}, false
	}
	return *t, true
}

func (s *Server) newIDLocked(prefix string) string {
	s.nextID++
	return prefix + strconv.Itoa(s.nextID)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			EscapedPath:   r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get(utils.RequestIDHeader),
			ContentType:   r.Header.Get("Content-Type"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.mu.Lock()
		f, ok := s.failures[key]
		delete(s.failures, key)
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	})
}
