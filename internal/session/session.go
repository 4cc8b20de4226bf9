// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session is the single source of truth for whether a user is signed
// in and who they are.
//
// A session is a (token, user) pair. The token is mirrored into durable
// storage so it survives restarts, and into the API gateway so requests carry
// it. Store is the only writer of both; everyone else reads.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/router"
	"github.com/MKhiriev/match-point/internal/store"
	"github.com/MKhiriev/match-point/models"
)

// revokeTimeout bounds the best-effort server-side logout.
const revokeTimeout = 5 * time.Second

// Store holds the current session. Methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.User

	adapter adapter.ServerAdapter
	storage store.LocalStorage
	nav     router.Navigator
	logger  *logger.Logger

	// wg tracks background token revocations.
	wg sync.WaitGroup
}

// New returns an empty session. Call [Store.Init] to restore a persisted one.
func New(serverAdapter adapter.ServerAdapter, storage store.LocalStorage, nav router.Navigator, log *logger.Logger) *Store {
	return &Store{
		adapter: serverAdapter,
		storage: storage,
		nav:     nav,
		logger:  log.GetChildLogger("session"),
	}
}

// Init restores a persisted token and verifies it by fetching the profile.
// Without a persisted token it is a no-op. If the profile fetch fails, token
// and storage are cleared and the error wraps [ErrSessionExpired].
//
// Init never navigates. The forced logout is the cleared session: the caller
// picks the start path, and a gated start path still lands on the login page
// through the router's auth gate.
func (s *Store) Init(ctx context.Context) error {
	token, err := s.storage.Get(ctx, store.KeyToken)
	if errors.Is(err, store.ErrKeyNotFound) || (err == nil && token == "") {
		s.logger.Debug().Msg("no persisted session")
		return nil
	}
	if err != nil {
		s.logger.Err(err).Msg("failed to read persisted token")
		return fmt.Errorf("read persisted token: %w", err)
	}

	s.setToken(token)

	user, err := s.adapter.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Info().Err(err).Msg("persisted session rejected, clearing")
		s.clear(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	s.setUser(user)
	s.logger.Info().Str("user_id", user.ID).Msg("session restored")
	return nil
}

// Login authenticates, persists the token and loads the profile. Any
// failure leaves the session cleared and returns an [*AuthError].
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		s.logger.Info().Err(err).Msg("login rejected")
		s.clear(ctx)
		return &AuthError{Message: err.Error(), Err: err}
	}
	if token.AccessToken == "" {
		s.clear(ctx)
		return &AuthError{Message: "empty access token"}
	}

	s.setToken(token.AccessToken)
	if err = s.storage.Set(ctx, store.KeyToken, token.AccessToken); err != nil {
		// the session still works for this run
		s.logger.Warn().Err(err).Msg("failed to persist token")
	}

	user, err := s.adapter.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Info().Err(err).Msg("profile fetch after login failed, clearing")
		s.clear(ctx)
		return &AuthError{Message: err.Error(), Err: err}
	}

	s.setUser(user)
	s.logger.Info().Str("user_id", user.ID).Msg("logged in")
	return nil
}

// Register creates the account and then logs in with the same credentials.
// A rejected registration returns a [*RegistrationError]; a failed login
// afterwards returns an [*AuthError].
func (s *Store) Register(ctx context.Context, user models.UserCreate) error {
	if _, err := s.adapter.Register(ctx, user); err != nil {
		s.logger.Info().Err(err).Msg("registration rejected")
		return &RegistrationError{Message: err.Error(), Err: err}
	}

	return s.Login(ctx, user.Email, user.Password)
}

// Logout clears token and user in memory and in storage, then navigates to
// the login route. It never fails. The server is asked to revoke the old
// token in the background; its answer is ignored.
func (s *Store) Logout() {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	s.clear(context.Background())
	s.logger.Info().Msg("logged out")

	if token != "" {
		s.wg.Add(1)
		go s.revoke(token)
	}

	if err := s.nav.Navigate(router.LoginPath); err != nil {
		s.logger.Warn().Err(err).Msg("navigation to login failed")
	}
}

func (s *Store) revoke(token string) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), revokeTimeout)
	defer cancel()

	if err := s.adapter.Logout(ctx, token); err != nil {
		s.logger.Debug().Err(err).Msg("server-side logout failed")
	}
}

// Wait blocks until background token revocations have finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

// IsAuthenticated reports whether a token is held in memory.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the held token, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the loaded profile. ok is false until a profile has
// been fetched for the held token.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// ExpiresAt returns the expiry claimed by a JWT token, or the zero time for
// opaque tokens and when no session is held. The claim is not verified.
func (s *Store) ExpiresAt() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}
	claims, err := models.ParseTokenClaims(token)
	if err != nil {
		return time.Time{}
	}
	return claims.ExpiresAt
}

// SetRedirectTarget remembers path as the destination after the next login.
func (s *Store) SetRedirectTarget(ctx context.Context, path string) error {
	if err := s.storage.Set(ctx, store.KeyRedirectAfterLogin, path); err != nil {
		return fmt.Errorf("store redirect target: %w", err)
	}
	return nil
}

// ConsumeRedirectTarget returns the remembered destination once and removes
// it.
func (s *Store) ConsumeRedirectTarget(ctx context.Context) (string, bool) {
	path, err := s.storage.Get(ctx, store.KeyRedirectAfterLogin)
	if err != nil || path == "" {
		return "", false
	}
	if err = s.storage.Remove(ctx, store.KeyRedirectAfterLogin); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove redirect target")
	}
	return path, true
}

func (s *Store) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.adapter.SetToken(token)
}

func (s *Store) setUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// clear forgets token and user. The in-memory state is cleared first so
// IsAuthenticated is false even if storage fails.
func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.adapter.SetToken("")
	s.mu.Unlock()

	if err := s.storage.Remove(ctx, store.KeyToken); err != nil {
		s.logger.Warn().Err(err).Msg("failed to remove persisted token")
	}
}
