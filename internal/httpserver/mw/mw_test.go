package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/makerhub/internal/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, false, logger.NewNop())(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/infra", nil)
	r.RemoteAddr = "10.1.1.1:1234"
	assert.Equal(t, http.StatusOK, serve(h, r).Code)

	r.RemoteAddr = "8.8.8.8:1234"
	assert.Equal(t, http.StatusForbidden, serve(h, r).Code)

	open := AllowOnlyCIDRS(nil, false, logger.NewNop())(okHandler)
	assert.Equal(t, http.StatusOK, serve(open, r).Code, "empty list is a passthrough")
}

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"makerhub.example.com", "*.dev.example.com"}, logger.NewNop())(okHandler)

	tests := []struct {
		host string
		want int
	}{
		{"makerhub.example.com", http.StatusOK},
		{"MakerHub.Example.com", http.StatusOK},
		{"app.dev.example.com", http.StatusOK},
		{"dev.example.com", http.StatusForbidden},
		{"evil.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/state", nil)
		r.Host = tt.host
		assert.Equal(t, tt.want, serve(h, r).Code, tt.host)
	}
}

func TestRateLimit(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cfg := RateLimitConfig{Burst: 2, PerMinute: 60, now: func() time.Time { return now }}
	h := RateLimit(cfg, logger.NewNop())(okHandler)

	r := httptest.NewRequest(http.MethodPost, "/api/cart/p1", nil)
	r.RemoteAddr = "1.2.3.4:1111"

	rec := serve(h, r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(h, r).Code)

	rec = serve(h, r)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodPost, "/api/cart/p1", nil)
	other.RemoteAddr = "5.6.7.8:1111"
	assert.Equal(t, http.StatusOK, serve(h, other).Code, "buckets are per IP")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serve(h, r).Code, "one token refilled after a second")
}

func TestLimiterSweep(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := newLimiter(RateLimitConfig{Burst: 1, PerMinute: 1, IdleTTL: time.Minute, now: func() time.Time { return now }})

	l.take("a")
	l.take("b")
	assert.Len(t, l.buckets, 2)

	now = now.Add(2 * time.Minute)
	l.take("c")
	assert.Len(t, l.buckets, 1)
}
