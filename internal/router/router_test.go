// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/match-point/internal/logger"
)

// recorder collects which handler ran with which request.
type recorder struct {
	mu    sync.Mutex
	calls []string
	reqs  []Request
}

func (rec *recorder) handler(name string) Handler {
	return func(req Request) error {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.calls = append(rec.calls, name)
		rec.reqs = append(rec.reqs, req)
		return nil
	}
}

func (rec *recorder) last() Request {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.reqs[len(rec.reqs)-1]
}

type fakeAuth bool

func (f fakeAuth) IsAuthenticated() bool { return bool(f) }

func newTestRouter(t *testing.T) (*Router, *recorder) {
	t.Helper()
	return New(logger.Nop()), &recorder{}
}

func TestNavigate_ExactMatchHasNoParams(t *testing.T) {
	r, rec := newTestRouter(t)
	for _, p := range []string{"/", "/login", "/register", "/tournaments", "/profile"} {
		require.NoError(t, r.Handle(p, rec.handler(p)))
	}

	for _, p := range []string{"/login", "/register", "/tournaments", "/profile", "/"} {
		require.NoError(t, r.Navigate(p))
		assert.Equal(t, p, rec.calls[len(rec.calls)-1])
		assert.Empty(t, rec.last().Params)
		assert.Equal(t, p, r.Current())
	}
	assert.Len(t, rec.calls, 5, "exactly one handler per navigation")
}

func TestNavigate_ParameterisedPattern(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/tournament/:id", rec.handler("tournament")))

	for _, v := range []string{"1", "abc", "t-42", "a.b", "ünï"} {
		require.NoError(t, r.Navigate("/tournament/"+v))
		assert.Equal(t, Params{"id": v}, rec.last().Params)
		assert.Equal(t, v, rec.last().Param("id"))
	}
}

func TestNavigate_ParameterIsUnescaped(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("root")))
	require.NoError(t, r.Handle("/join/:code", rec.handler("join")))

	tests := map[string]string{
		"/join/a%20b":     "a b",
		"/join/50%25":     "50%",
		"/join/x%2Fy":     "x/y",
		"/join/%C3%BCber": "über",
	}
	for path, want := range tests {
		require.NoError(t, r.Navigate(path))
		assert.Equal(t, Params{"code": want}, rec.last().Params, path)
		assert.Equal(t, path, r.Current(), "current route keeps the escaped form")
	}

	require.NoError(t, r.Navigate("/join/%zz"))
	assert.Equal(t, "root", rec.calls[len(rec.calls)-1], "malformed escape does not match")
}

func TestNavigate_ParameterNeverSpansSlash(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("root")))
	require.NoError(t, r.Handle("/tournament/:id", rec.handler("tournament")))

	require.NoError(t, r.Navigate("/tournament/a/b"))
	assert.Equal(t, []string{"root"}, rec.calls)
}

func TestNavigate_MultipleParams(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/tournament/:id/matches/:matchId/result", rec.handler("result")))

	require.NoError(t, r.Navigate("/tournament/t1/matches/m2/result"))
	assert.Equal(t, Params{"id": "t1", "matchId": "m2"}, rec.last().Params)
}

func TestNavigate_FallbackToRoot(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("root")))
	require.NoError(t, r.Handle("/login", rec.handler("login")))

	require.NoError(t, r.Navigate("/nowhere"))
	assert.Equal(t, []string{"root"}, rec.calls)
	assert.Equal(t, "/nowhere", r.Current(), "current route is the requested path")
	assert.Empty(t, rec.last().Params)
}

func TestNavigate_NoRouteNoRoot(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/login", rec.handler("login")))

	err := r.Navigate("/nowhere")
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Empty(t, rec.calls)
	assert.Equal(t, "/nowhere", r.Current())
}

func TestNavigate_ExactBeatsPattern(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/a/:x", rec.handler("pattern")))
	require.NoError(t, r.Handle("/a", rec.handler("exact")))

	require.NoError(t, r.Navigate("/a"))
	assert.Equal(t, []string{"exact"}, rec.calls)

	require.NoError(t, r.Navigate("/a/1"))
	assert.Equal(t, []string{"exact", "pattern"}, rec.calls)
}

func TestNavigate_ExactBeatsPatternForStaticSibling(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/tournament/:id", rec.handler("detail")))
	require.NoError(t, r.Handle("/tournament/new", rec.handler("new")))

	require.NoError(t, r.Navigate("/tournament/new"))
	assert.Equal(t, []string{"new"}, rec.calls)
}

func TestNavigate_PatternsInRegistrationOrder(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/x/:first", rec.handler("first")))
	require.NoError(t, r.Handle("/x/:second", rec.handler("second")))

	require.NoError(t, r.Navigate("/x/1"))
	assert.Equal(t, []string{"first"}, rec.calls)
	assert.Equal(t, Params{"first": "1"}, rec.last().Params)
}

func TestNavigate_PatternKeyIsAlsoExactKey(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/tournament/:id", rec.handler("tournament")))

	require.NoError(t, r.Navigate("/tournament/:id"))
	assert.Equal(t, []string{"tournament"}, rec.calls)
	assert.Empty(t, rec.last().Params)
}

func TestNavigate_InvalidPath(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("root")))

	assert.ErrorIs(t, r.Navigate("login"), ErrInvalidPath)
	assert.Empty(t, rec.calls)
	assert.Zero(t, r.Generation())
}

func TestNavigate_HandlerErrorPropagates(t *testing.T) {
	r, _ := newTestRouter(t)
	boom := errors.New("boom")
	require.NoError(t, r.Handle("/bad", func(Request) error { return boom }))

	err := r.Navigate("/bad")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "/bad", r.Current())
}

func TestNavigate_ReentrantFromHandler(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/old", func(Request) error { return r.Navigate("/new") }))
	require.NoError(t, r.Handle("/new", rec.handler("new")))

	require.NoError(t, r.Navigate("/old"))
	assert.Equal(t, []string{"new"}, rec.calls)
	assert.Equal(t, "/new", r.Current())
	assert.Equal(t, uint64(2), r.Generation())
}

func TestGenerations(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("root")))

	require.NoError(t, r.Navigate("/"))
	first := rec.last().Generation
	assert.True(t, r.IsCurrent(first))

	require.NoError(t, r.Navigate("/"))
	second := rec.last().Generation
	assert.Greater(t, second, first)
	assert.False(t, r.IsCurrent(first), "superseded navigation is stale")
	assert.True(t, r.IsCurrent(second))
}

func TestBackForward(t *testing.T) {
	r, rec := newTestRouter(t)
	for _, p := range []string{"/", "/a", "/b"} {
		require.NoError(t, r.Handle(p, rec.handler(p)))
	}

	require.NoError(t, r.Start("/"))
	require.NoError(t, r.Navigate("/a"))
	require.NoError(t, r.Navigate("/b"))

	require.NoError(t, r.Back())
	assert.Equal(t, "/a", r.Current())
	require.NoError(t, r.Back())
	assert.Equal(t, "/", r.Current())
	assert.ErrorIs(t, r.Back(), ErrNoHistory)
	assert.False(t, r.CanGoBack())

	require.NoError(t, r.Forward())
	assert.Equal(t, "/a", r.Current())
	assert.True(t, r.CanGoForward())

	assert.Equal(t, []string{"/", "/a", "/b", "/a", "/", "/a"}, rec.calls)
}

func TestReplace(t *testing.T) {
	r, rec := newTestRouter(t)
	for _, p := range []string{"/", "/a", "/b"} {
		require.NoError(t, r.Handle(p, rec.handler(p)))
	}

	require.NoError(t, r.Start("/"))
	require.NoError(t, r.Navigate("/a"))
	require.NoError(t, r.Replace("/b"))
	require.NoError(t, r.Back())
	assert.Equal(t, "/", r.Current())
}

func TestHandle_Errors(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/a", rec.handler("a")))

	assert.ErrorIs(t, r.Handle("/a", rec.handler("again")), ErrDuplicateRoute)
	assert.ErrorIs(t, r.Handle("a", rec.handler("a")), ErrInvalidPattern)
	assert.ErrorIs(t, r.Handle("/b", nil), ErrInvalidPattern)

	require.NoError(t, r.Start("/a"))
	assert.ErrorIs(t, r.Handle("/late", rec.handler("late")), ErrRouterStarted)
}

func TestRequireAuth(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("home")))
	require.NoError(t, r.Handle(LoginPath, rec.handler("login")))
	require.NoError(t, r.Handle("/tournament/:id", r.RequireAuth(fakeAuth(false), rec.handler("tournament"))))

	require.NoError(t, r.Start("/"))
	require.NoError(t, r.Navigate("/tournament/42"))

	assert.Equal(t, []string{"home", "login"}, rec.calls)
	assert.Empty(t, rec.last().Params, "original params are discarded")
	assert.Equal(t, LoginPath, r.Current())

	require.NoError(t, r.Back())
	assert.Equal(t, "/", r.Current(), "gated entry was replaced by login")
}

func TestRequireAuth_Authenticated(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle(LoginPath, rec.handler("login")))
	require.NoError(t, r.Handle("/tournament/:id", r.RequireAuth(fakeAuth(true), rec.handler("tournament"))))

	require.NoError(t, r.Navigate("/tournament/42"))
	assert.Equal(t, []string{"tournament"}, rec.calls)
	assert.Equal(t, Params{"id": "42"}, rec.last().Params)
}

func TestConcurrentNavigation(t *testing.T) {
	r, rec := newTestRouter(t)
	require.NoError(t, r.Handle("/", rec.handler("root")))
	require.NoError(t, r.Handle("/item/:id", rec.handler("item")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Navigate(fmt.Sprintf("/item/%d", i))
			_ = r.Back()
		}(i)
	}
	wg.Wait()

	assert.GreaterOrEqual(t, r.Generation(), uint64(20))
	assert.GreaterOrEqual(t, len(rec.calls), 20)
}
