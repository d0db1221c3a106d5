package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telebill/telebill/internal/infrastructure/auth"
	"github.com/telebill/telebill/internal/interfaces/http/handlers/testutil"
	"github.com/telebill/telebill/internal/shared/constants"
)

func okHandler(c *gin.Context) { c.Status(http.StatusOK) }

// =====================================================================
// RequireAuth
// =====================================================================

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 30)
	token, _, err := jwtSvc.Generate("adm_abc", "root@telebill.dev")
	require.NoError(t, err)

	var seenAdmin any
	engine := gin.New()
	engine.GET("/secure", NewAuthMiddleware(jwtSvc, testutil.NewMockLogger()).RequireAuth(), func(c *gin.Context) {
		seenAdmin, _ = c.Get(constants.ContextKeyAdminID)
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"tampered token", "Bearer " + token + "x", http.StatusUnauthorized},
		{"foreign secret", "Bearer " + mustToken(t, auth.NewJWTService("other", 30)), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenAdmin = nil
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "adm_abc", seenAdmin)
			} else {
				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				assert.False(t, resp.Success)
				require.NotNil(t, resp.Error)
				assert.Equal(t, "unauthorized", resp.Error.Type)
			}
		})
	}
}

func mustToken(t *testing.T, svc *auth.JWTService) string {
	t.Helper()
	tok, _, err := svc.Generate("adm_x", "x@telebill.dev")
	require.NoError(t, err)
	return tok
}

// =====================================================================
// RateLimiter
// =====================================================================

type memCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (m *memCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if m.counts == nil {
		m.counts = map[string]int64{}
	}
	m.counts[key]++
	return m.counts[key], nil
}

func limitedEngine(rl *RateLimiter) *gin.Engine {
	engine := gin.New()
	engine.POST("/auth/login", rl.Limit(), okHandler)
	return engine
}

func post(engine *gin.Engine) int {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	t.Run("blocks after limit within a window", func(t *testing.T) {
		rl := NewRateLimiter(nil, "login", 2, time.Hour, testutil.NewMockLogger())
		rl.counter = &memCounter{}
		engine := limitedEngine(rl)

		assert.Equal(t, http.StatusOK, post(engine))
		assert.Equal(t, http.StatusOK, post(engine))
		assert.Equal(t, http.StatusTooManyRequests, post(engine))
	})

	t.Run("fails open when the store errors", func(t *testing.T) {
		rl := NewRateLimiter(nil, "login", 1, time.Minute, testutil.NewMockLogger())
		rl.counter = &memCounter{err: errors.New("redis down")}
		engine := limitedEngine(rl)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, post(engine))
		}
	})

	t.Run("sub-second window is widened to one second", func(t *testing.T) {
		rl := NewRateLimiter(nil, "login", 1, 250*time.Millisecond, testutil.NewMockLogger())
		assert.Equal(t, time.Second, rl.window)

		rl.counter = &memCounter{}
		assert.Equal(t, http.StatusOK, post(limitedEngine(rl)))
	})

	t.Run("no redis means no limit", func(t *testing.T) {
		engine := limitedEngine(NewRateLimiter(nil, "login", 1, time.Minute, testutil.NewMockLogger()))

		assert.Equal(t, http.StatusOK, post(engine))
		assert.Equal(t, http.StatusOK, post(engine))
	})
}

// =====================================================================
// CORS / Recovery
// =====================================================================

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"http://localhost:3000"}))
	engine.GET("/cities", okHandler)

	t.Run("whitelisted origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cities", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cities", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/cities", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(testutil.NewMockLogger()))
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "internal_error", resp.Error.Type)
}

func TestMaskedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Authorization", "Bearer secret")

	headers := maskedHeaders(req)
	assert.Contains(t, headers, "Authorization: *")
	for _, h := range headers {
		assert.NotContains(t, h, "secret")
	}
}
