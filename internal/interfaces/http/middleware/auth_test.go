package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/internal/infrastructure/auth"
	"inkpress/internal/shared/constants"
	"inkpress/internal/shared/logger"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService("test-secret", 15, 7)
	m := NewAuthMiddleware(jwtService, logger.NewLogger())

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint(constants.ContextKeyUserID),
			"is_admin": c.GetBool(constants.ContextKeyIsAdmin),
		})
	})
	router.GET("/admin", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/public", m.OptionalAuth(), func(c *gin.Context) {
		_, authenticated := c.Get(constants.ContextKeyUserID)
		c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router, jwtService := setupAuthRouter(t)

	t.Run("missing token is unauthorized", func(t *testing.T) {
		w := doRequest(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		w := doRequest(router, "/protected", "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token is rejected on protected routes", func(t *testing.T) {
		pair, err := jwtService.Generate(42, false)
		require.NoError(t, err)
		w := doRequest(router, "/protected", pair.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid access token resolves identity", func(t *testing.T) {
		pair, err := jwtService.Generate(42, true)
		require.NoError(t, err)
		w := doRequest(router, "/protected", pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
		assert.Contains(t, w.Body.String(), `"is_admin":true`)
	})
}

func TestRequireAdmin(t *testing.T) {
	router, jwtService := setupAuthRouter(t)

	t.Run("regular user is forbidden", func(t *testing.T) {
		pair, err := jwtService.Generate(42, false)
		require.NoError(t, err)
		w := doRequest(router, "/admin", pair.AccessToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		pair, err := jwtService.Generate(1, true)
		require.NoError(t, err)
		w := doRequest(router, "/admin", pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	router, jwtService := setupAuthRouter(t)

	t.Run("anonymous passes without identity", func(t *testing.T) {
		w := doRequest(router, "/public", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("bad token stays anonymous instead of failing", func(t *testing.T) {
		w := doRequest(router, "/public", "not.a.token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("valid token resolves identity", func(t *testing.T) {
		pair, err := jwtService.Generate(42, false)
		require.NoError(t, err)
		w := doRequest(router, "/public", pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})
}
