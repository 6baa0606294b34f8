package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/pkg/log"
	"storefront/pkg/scope"
)

func newTestEngine(mw Middleware, h gin.HandlerFunc, chain ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(chain...)
	r.POST("/t", h)
	r.GET("/t", h)
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), config.CookieConfig{Name: "token"}, 60)

	var seen string
	r := newTestEngine(mw, func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
	}, mw.RequestID())

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("Propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestToken(t *testing.T) {
	mw := New(log.NewNop(), config.CookieConfig{Name: "token"}, 60)

	var seen string
	r := newTestEngine(mw, func(c *gin.Context) {
		seen = scope.TokenFromContext(c.Request.Context())
	}, mw.Token())

	t.Run("Cookie Present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "opaque"})
		r.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "opaque", seen)
	})

	t.Run("No Cookie", func(t *testing.T) {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/t", nil))
		assert.Empty(t, seen)
	})
}

func TestAuthRateLimit(t *testing.T) {
	handler := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	send := func(r *gin.Engine, remote, forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/t", nil)
		req.RemoteAddr = remote
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
			req.Header.Set("X-Real-IP", forwarded)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("Per Peer", func(t *testing.T) {
		// 10 per minute gives a burst of 1.
		mw := New(log.NewNop(), config.CookieConfig{Name: "token"}, 10)
		r := newTestEngine(mw, handler, mw.AuthRateLimit())

		assert.Equal(t, http.StatusNoContent, send(r, "1.1.1.1:1000", ""))
		assert.Equal(t, http.StatusTooManyRequests, send(r, "1.1.1.1:1001", ""))
		assert.Equal(t, http.StatusNoContent, send(r, "2.2.2.2:1000", ""))
	})

	t.Run("Forwarded Headers From Untrusted Peer Ignored", func(t *testing.T) {
		mw := New(log.NewNop(), config.CookieConfig{Name: "token"}, 10)
		r := newTestEngine(mw, handler, mw.AuthRateLimit())

		blocked := 0
		for i := 0; i < 50; i++ {
			if send(r, "1.1.1.1:1000", fmt.Sprintf("203.0.113.%d", i)) == http.StatusTooManyRequests {
				blocked++
			}
		}
		assert.Equal(t, 49, blocked)
	})

	t.Run("Trusted Proxy Forwards Client IP", func(t *testing.T) {
		mw := New(log.NewNop(), config.CookieConfig{Name: "token"}, 10)
		gin.SetMode(gin.TestMode)
		r := gin.New()
		require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.1"}))
		r.Use(mw.AuthRateLimit())
		r.POST("/t", handler)

		assert.Equal(t, http.StatusNoContent, send(r, "10.0.0.1:1000", "9.9.9.9"))
		assert.Equal(t, http.StatusTooManyRequests, send(r, "10.0.0.1:1000", "9.9.9.9"))
		assert.Equal(t, http.StatusNoContent, send(r, "10.0.0.1:1000", "8.8.8.8"))
	})
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("1.1.1.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}

func TestTokenCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), config.CookieConfig{Name: "token", MaxAge: 3600, HTTPOnly: true, SameSite: "strict"}, 60)

	t.Run("Set", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

		mw.SetTokenCookie(c, "opaque")

		cookies := w.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, "token", cookies[0].Name)
			assert.Equal(t, "opaque", cookies[0].Value)
			assert.Equal(t, 3600, cookies[0].MaxAge)
			assert.True(t, cookies[0].HttpOnly)
			assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

		mw.ClearTokenCookie(c)

		cookies := w.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, "", cookies[0].Value)
			assert.True(t, cookies[0].MaxAge < 0)
		}
	})
}

func TestTokenCookieSameSiteDefaultsToLax(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), config.CookieConfig{Name: "token", MaxAge: 3600}, 60)

	for _, name := range []string{"Set", "Clear"} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			if name == "Set" {
				mw.SetTokenCookie(c, "opaque")
			} else {
				mw.ClearTokenCookie(c)
			}

			cookies := w.Result().Cookies()
			if assert.Len(t, cookies, 1) {
				assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
			}
		})
	}
}
