package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mentorbay/api/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func guardedRouter(t *testing.T, role string, claims *helpers.EnhancedClaims) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			if claims != nil {
				c.Set("user", claims)
			}
		},
		RequireRole(role),
		func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		},
	)
	return r
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	r := guardedRouter(t, "mentor", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGuardRedirectsWrongRoleToHome(t *testing.T) {
	seeker := &helpers.EnhancedClaims{Role: "seeker"}
	r := guardedRouter(t, "mentor", seeker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardAdmitsMatchingRole(t *testing.T) {
	mentor := &helpers.EnhancedClaims{Role: "mentor"}
	r := guardedRouter(t, "mentor", mentor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)

	first := limiter.GetLimiter("10.0.0.1")
	second := limiter.GetLimiter("10.0.0.2")

	assert.True(t, first.Allow())
	assert.False(t, first.Allow(), "burst of one is spent")
	assert.True(t, second.Allow(), "a different client has its own budget")
}
