package handlers

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

func TestRequireCallerIdentity_RejectsRequestWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/:userID/score", requireCallerIdentity(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/user-1/score", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Caller identity missing")
}

func TestRequireCallerIdentity_PassesAuthenticatedRequest(t *testing.T) {
	const secret = "handlers-test-secret"
	token, err := utils.GenerateJWT("client-7", secret, time.Hour, "alt-credit-scoring")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/:userID/score", middleware.AuthMiddleware(secret), requireCallerIdentity(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/user-1/score", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
