package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func serveFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charts/line", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	limiter := NewRateLimiter(2, 4)
	defer limiter.Stop()

	e := echo.New()
	handler := limiter.Middleware()(okHandler)

	for i := 0; i < 4; i++ {
		rec := serveFrom(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serveFrom(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_DifferentIPsAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	defer limiter.Stop()

	e := echo.New()
	handler := limiter.Middleware()(okHandler)

	for _, ip := range []string{"10.0.0.1:1234", "10.0.0.2:1234", "10.0.0.3:1234"} {
		for i := 0; i < 2; i++ {
			rec := serveFrom(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "ip %s request %d", ip, i)
		}
	}
}

func TestRateLimiter_ConcurrentRequests(t *testing.T) {
	limiter := NewRateLimiter(1, 10)
	defer limiter.Stop()

	e := echo.New()
	handler := limiter.Middleware()(okHandler)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serveFrom(e, handler, "172.16.0.1:999")
			mu.Lock()
			defer mu.Unlock()
			if rec.Code == http.StatusOK {
				accepted++
			} else {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, accepted+rejected)
	assert.GreaterOrEqual(t, accepted, 10)
	assert.Greater(t, rejected, 0)
}

func TestRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(5, 10)
	defer limiter.Stop()

	limiter.getVisitor("idle")
	limiter.getVisitor("active")

	limiter.mu.Lock()
	limiter.visitors["idle"].lastSeen = time.Now().Add(-10 * time.Minute)
	limiter.mu.Unlock()

	limiter.cleanup(time.Now())

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	_, idleKept := limiter.visitors["idle"]
	_, activeKept := limiter.visitors["active"]
	assert.False(t, idleKept)
	assert.True(t, activeKept)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewRateLimiter(5, 10)
	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}

func TestGetIP(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"first forwarded address", map[string]string{"X-Forwarded-For": " 203.0.113.5 , 10.0.0.1"}, "127.0.0.1:80", "203.0.113.5"},
		{"real ip header", map[string]string{"X-Real-IP": "198.51.100.7"}, "127.0.0.1:80", "198.51.100.7"},
		{"remote address", nil, "192.0.2.10:4567", "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			require.Equal(t, tt.expected, getIP(c))
		})
	}
}
