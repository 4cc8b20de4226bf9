// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/models"
)

// ErrTokenExpired is reported when the held token's own exp claim has passed.
var ErrTokenExpired = errors.New("access token expired")

// Session is the read side of the session store.
type Session interface {
	IsAuthenticated() bool
	Token() string
}

// ProfileFetcher fetches the profile of the held token.
type ProfileFetcher interface {
	GetCurrentUser(ctx context.Context) (models.User, error)
}

// SessionWatcher re-validates the held token every interval and calls
// onExpired when the server no longer accepts it. It never changes the
// session itself.
type SessionWatcher struct {
	session   Session
	profiles  ProfileFetcher
	interval  time.Duration
	onExpired func(error)
	logger    *logger.Logger
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatcher returns an idle watcher. A non-positive interval makes
// Start a no-op.
func NewSessionWatcher(session Session, profiles ProfileFetcher, interval time.Duration, onExpired func(error), logger *logger.Logger) *SessionWatcher {
	return &SessionWatcher{
		session:   session,
		profiles:  profiles,
		interval:  interval,
		onExpired: onExpired,
		logger:    logger.GetChildLogger("session_watcher"),
		now:       time.Now,
	}
}

func (w *SessionWatcher) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Debug().Msg("session watcher disabled")
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.Check(jobCtx)
			}
		}
	}()
}

func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Check validates the held token once and reports whether it is still
// accepted. Only a 401 counts as expiry; transport errors and other statuses
// keep the session. A token replaced while the request was in flight is not
// reported. A JWT whose exp has passed is reported without asking the server.
func (w *SessionWatcher) Check(ctx context.Context) bool {
	if !w.session.IsAuthenticated() {
		return true
	}
	token := w.session.Token()

	if claims, err := models.ParseTokenClaims(token); err == nil && claims.Expired(w.now()) {
		w.logger.Info().Time("expires_at", claims.ExpiresAt).Msg("session token past expiry")
		w.report(ErrTokenExpired)
		return false
	}

	_, err := w.profiles.GetCurrentUser(ctx)
	switch {
	case err == nil:
		return true
	case errors.Is(err, adapter.ErrUnauthorized):
		if w.session.Token() != token {
			return true
		}
		w.logger.Info().Err(err).Msg("session no longer accepted")
		w.report(err)
		return false
	default:
		w.logger.Debug().Err(err).Msg("session check failed")
		return true
	}
}

func (w *SessionWatcher) report(err error) {
	if w.onExpired != nil {
		w.onExpired(err)
	}
}
