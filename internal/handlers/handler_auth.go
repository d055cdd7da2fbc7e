package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/credvault/alt_credit_scoring_app/internal/dto"
	"github.com/credvault/alt_credit_scoring_app/internal/middleware"
	"github.com/credvault/alt_credit_scoring_app/internal/platform/config"
	"github.com/credvault/alt_credit_scoring_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles the client-credentials login flow.
type authHandler struct {
	cfg *config.Config
}

func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := newAuthHandler(cfg)
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
	}
}

// login godoc
// @Summary Exchange API credentials for a JWT
// @Description Validates the client ID and secret and issues a bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "API credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if h.cfg.APIClientID == "" || h.cfg.APIClientSecretHash == "" {
		logger.Error("Login attempted but API credentials are not configured")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	idMatch := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.cfg.APIClientID)) == 1
	if !idMatch || !utils.CheckSecretHash(req.ClientSecret, h.cfg.APIClientSecretHash) {
		logger.Warn("Login rejected", slog.String("client_id", req.ClientID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(req.ClientID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("Client authenticated", slog.String("client_id", req.ClientID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(h.cfg.JWTExpiryDuration.Seconds()),
	})
}
