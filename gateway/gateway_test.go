package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"utyadmin/models"
	"utyadmin/session"
)

func staleSession() *session.Store {
	jar := session.NewMemoryJar()
	jar.Set(session.AccessTokenCookie, "stale-acc")
	jar.Set(session.RefreshTokenCookie, "ref-1")
	return session.New(jar)
}

func TestRefreshAndReplayOn401(t *testing.T) {
	var thingCalls, refreshCalls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		switch r.URL.Path {
		case "/auth/refresh/accessToken":
			atomic.AddInt32(&refreshCalls, 1)
			require.Equal(t, "Bearer ref-1", r.Header.Get("Authorization"))
			w.Write([]byte(`{"access_token":"new-acc","refresh_token":"ref-2"}`))
		case "/things":
			atomic.AddInt32(&thingCalls, 1)
			if r.Header.Get("Authorization") != "Bearer new-acc" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	sess := staleSession()

	var out map[string]bool
	err := c.Do(context.Background(), sess, http.MethodGet, "/things", nil, nil, &out)
	require.NoError(t, err)
	assert.True(t, out["ok"])

	// one refresh, the original dispatched twice
	assert.EqualValues(t, 1, atomic.LoadInt32(&refreshCalls))
	assert.EqualValues(t, 2, atomic.LoadInt32(&thingCalls))

	// rotated pair is now the session's
	assert.Equal(t, "new-acc", sess.AccessToken())
	assert.Equal(t, "ref-2", sess.RefreshToken())
	assert.True(t, sess.IsAuthenticated())
}

func TestFailedRefreshLogsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	sess := staleSession()

	err := c.Do(context.Background(), sess, http.MethodGet, "/things", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "", sess.RefreshToken())
}

func TestNoRefreshTokenLogsOutImmediately(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh/accessToken" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	jar := session.NewMemoryJar()
	jar.Set(session.AccessTokenCookie, "stale-acc")
	sess := session.New(jar)

	c := New(srv.URL, zap.NewNop())
	err := c.Do(context.Background(), sess, http.MethodGet, "/things", nil, nil, nil)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.EqualValues(t, 0, atomic.LoadInt32(&refreshCalls))
	assert.False(t, sess.IsAuthenticated())
}

func TestLoginFailureDoesNotTriggerRefresh(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh/accessToken" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	sess := session.New(session.NewMemoryJar())

	_, err := c.Login(context.Background(), sess, "0600000000", "1234")
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.EqualValues(t, 0, atomic.LoadInt32(&refreshCalls))
}

func TestReplay401IsFinal(t *testing.T) {
	var thingCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh/accessToken":
			w.Write([]byte(`{"access_token":"new-acc","refresh_token":"ref-2"}`))
		case "/things":
			// still 401 even with the fresh token
			atomic.AddInt32(&thingCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	sess := staleSession()

	err := c.Do(context.Background(), sess, http.MethodGet, "/things", nil, nil, nil)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	// original plus exactly one replay, no second refresh cycle
	assert.EqualValues(t, 2, atomic.LoadInt32(&thingCalls))
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	const n = 8

	// the first wave of 401s is released only once all n requests have
	// arrived, so every caller hits the refresh path at the same moment
	var mu sync.Mutex
	staleArrived := 0
	allStale := make(chan struct{})

	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh/accessToken":
			atomic.AddInt32(&refreshCalls, 1)
			time.Sleep(100 * time.Millisecond)
			w.Write([]byte(`{"access_token":"new-acc","refresh_token":"ref-2"}`))
		case "/things":
			if r.Header.Get("Authorization") != "Bearer new-acc" {
				mu.Lock()
				staleArrived++
				if staleArrived == n {
					close(allStale)
				}
				mu.Unlock()
				<-allStale
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())

	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make([]error, n)
	sessions := make([]*session.Store, n)
	for i := range sessions {
		sessions[i] = staleSession()
	}

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = c.Do(context.Background(), sessions[i], http.MethodGet, "/things", nil, nil, nil)
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d", i)
		assert.Equal(t, "new-acc", sessions[i].AccessToken(), "session %d", i)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&refreshCalls))
}

func TestLoginStoresTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"accessToken":"acc","refreshToken":"ref"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	jar := session.NewMemoryJar()
	sess := session.New(jar)

	tokens, err := c.Login(context.Background(), sess, "0600000000", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.AuthTokens{AccessToken: "acc", RefreshToken: "ref"}, tokens)
	assert.True(t, sess.IsAuthenticated())

	v, ok := jar.Get(session.RefreshTokenCookie)
	require.True(t, ok)
	assert.Equal(t, "ref", v)
}

func TestLogoutClearsSessionEvenWhenUpstreamFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	sess := staleSession()
	require.True(t, sess.IsAuthenticated())

	c.Logout(context.Background(), sess)
	assert.False(t, sess.IsAuthenticated())
}

func TestLogout401DoesNotTriggerRefresh(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh/accessToken" {
			atomic.AddInt32(&refreshCalls, 1)
			w.Write([]byte(`{"access_token":"new-acc","refresh_token":"ref-2"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	sess := staleSession()

	// a 401 on logout is moot; the tokens are being discarded either way
	c.Logout(context.Background(), sess)
	assert.False(t, sess.IsAuthenticated())
	assert.EqualValues(t, 0, atomic.LoadInt32(&refreshCalls))
}
