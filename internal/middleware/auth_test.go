package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/middleware"
	"github.com/credvault/alt_credit_scoring_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-for-auth-middleware"

func newAuthedRouter(jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(jwtSecret), func(c *gin.Context) {
		callerID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "caller identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"callerID": callerID})
	})
	return r
}

func TestAuthMiddleware_ValidTokenExposesCallerIdentity(t *testing.T) {
	token, err := utils.GenerateJWT("client-42", testJWTSecret, time.Hour, "alt-credit-scoring")
	require.NoError(t, err)

	r := newAuthedRouter(testJWTSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"callerID":"client-42"`)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthedRouter(testJWTSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateJWT("client-42", testJWTSecret, -time.Minute, "alt-credit-scoring")
	require.NoError(t, err)

	r := newAuthedRouter(testJWTSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddleware_WrongSecretRejected(t *testing.T) {
	token, err := utils.GenerateJWT("client-42", "some-other-secret", time.Hour, "alt-credit-scoring")
	require.NoError(t, err)

	r := newAuthedRouter(testJWTSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestGetUserIDFromContext_AbsentWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.GetUserIDFromContext(c)
	assert.False(t, ok)
}
