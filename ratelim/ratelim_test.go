package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func hit(rl *RateLimiter, ip string) int {
	h := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.RemoteAddr = ip
	w := httptest.NewRecorder()
	h(w, r, nil)
	return w.Code
}

func TestLimitBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(rl, "1.2.3.4:1000"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(rl, "1.2.3.4:1000"))

	// a different address has its own bucket
	assert.Equal(t, http.StatusOK, hit(rl, "5.6.7.8:1000"))
}

func TestEvictIdleVisitors(t *testing.T) {
	rl := NewRateLimiter()
	rl.getLimiter("1.2.3.4:1000")
	rl.getLimiter("5.6.7.8:1000")

	// only the first visitor has gone idle past the TTL
	rl.mu.Lock()
	rl.visitors["1.2.3.4:1000"].lastSeen = time.Now().Add(-visitorTTL - time.Minute)
	rl.mu.Unlock()

	rl.evictIdle(time.Now())

	rl.mu.Lock()
	defer rl.mu.Unlock()
	_, evicted := rl.visitors["1.2.3.4:1000"]
	_, kept := rl.visitors["5.6.7.8:1000"]
	assert.False(t, evicted)
	assert.True(t, kept)
}
