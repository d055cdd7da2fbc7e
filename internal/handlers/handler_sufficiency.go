package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
	"github.com/credvault/alt_credit_scoring_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sufficiencyHandler handles data-sufficiency evaluation requests.
type sufficiencyHandler struct {
	sufficiencyService portssvc.SufficiencySvcFacade
}

func newSufficiencyHandler(ss portssvc.SufficiencySvcFacade) *sufficiencyHandler {
	return &sufficiencyHandler{sufficiencyService: ss}
}

// registerSufficiencyRoutes registers routes related to the sufficiency gate.
func registerSufficiencyRoutes(rg *gin.RouterGroup, sufficiencyService portssvc.SufficiencySvcFacade) {
	h := newSufficiencyHandler(sufficiencyService)
	rg.GET("/sufficiency", h.evaluateSufficiency)
}

// evaluateSufficiency godoc
// @Summary Evaluate data sufficiency
// @Description Computes the weighted data-requirement report gating score computation
// @Tags sufficiency
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.SufficiencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to evaluate sufficiency"
// @Security BearerAuth
// @Router /users/{userID}/sufficiency [get]
func (h *sufficiencyHandler) evaluateSufficiency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	report, err := h.sufficiencyService.EvaluateSufficiency(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to evaluate sufficiency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate sufficiency"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSufficiencyResponse(report))
}
