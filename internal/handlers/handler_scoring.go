package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
	"github.com/credvault/alt_credit_scoring_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 12

// scoringHandler handles score computation, retrieval and explanation requests.
type scoringHandler struct {
	scoringService     portssvc.ScoringSvcFacade
	explanationService portssvc.ExplanationSvcFacade
}

func newScoringHandler(ss portssvc.ScoringSvcFacade, es portssvc.ExplanationSvcFacade) *scoringHandler {
	return &scoringHandler{scoringService: ss, explanationService: es}
}

// registerScoringRoutes registers routes related to credit scores.
func registerScoringRoutes(rg *gin.RouterGroup, scoringService portssvc.ScoringSvcFacade, explanationService portssvc.ExplanationSvcFacade) {
	h := newScoringHandler(scoringService, explanationService)

	score := rg.Group("/score")
	{
		score.POST("", h.computeScore)
		score.GET("", h.getLatestScore)
		score.GET("/history", h.listScoreHistory)
		score.GET("/explanation", h.explainScore)
	}
}

// computeScore godoc
// @Summary Compute a new credit score
// @Description Runs the full scoring pipeline and persists a new snapshot. Rejected with 422 when the data-sufficiency gate blocks scoring.
// @Tags scores
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 201 {object} dto.ScoreResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]interface{} "Insufficient data for scoring"
// @Failure 500 {object} map[string]string "Failed to compute score"
// @Security BearerAuth
// @Router /users/{userID}/score [post]
func (h *scoringHandler) computeScore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	snapshot, err := h.scoringService.ComputeScore(c.Request.Context(), userID)
	if err != nil {
		var insufficientErr *apperrors.InsufficientDataError
		if errors.As(err, &insufficientErr) {
			logger.Warn("Scoring blocked by sufficiency gate", slog.Any("unmet", insufficientErr.UnmetRequirements))
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Insufficient data for scoring",
				"unmetRequirements": insufficientErr.UnmetRequirements,
			})
			return
		}
		logger.Error("Failed to compute score", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute score"})
		return
	}

	logger.Info("Score computed", slog.Int("score", snapshot.Score))
	c.JSON(http.StatusCreated, dto.ToScoreResponse(snapshot))
}

// getLatestScore godoc
// @Summary Get the latest credit score
// @Description Retrieves the most recent persisted snapshot for a user
// @Tags scores
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.ScoreResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No score found"
// @Failure 500 {object} map[string]string "Failed to retrieve score"
// @Security BearerAuth
// @Router /users/{userID}/score [get]
func (h *scoringHandler) getLatestScore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	snapshot, err := h.scoringService.GetLatestScore(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No score found"})
			return
		}
		logger.Error("Failed to retrieve latest score", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve score"})
		return
	}
	c.JSON(http.StatusOK, dto.ToScoreResponse(snapshot))
}

// listScoreHistory godoc
// @Summary List score history
// @Description Retrieves up to limit snapshots, most recent first
// @Tags scores
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   limit query int false "Maximum snapshots to return" default(12)
// @Success 200 {object} dto.ScoreHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve score history"
// @Security BearerAuth
// @Router /users/{userID}/score/history [get]
func (h *scoringHandler) listScoreHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	history, err := h.scoringService.ListScoreHistory(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to retrieve score history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve score history"})
		return
	}
	c.JSON(http.StatusOK, dto.ToScoreHistoryResponse(history))
}

// explainScore godoc
// @Summary Explain the latest credit score
// @Description Turns the latest snapshot's factors into natural-language rationale, a historical-trend series and ranked improvement tips
// @Tags scores
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {object} dto.ScoreExplanationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No score found"
// @Failure 500 {object} map[string]string "Failed to explain score"
// @Security BearerAuth
// @Router /users/{userID}/score/explanation [get]
func (h *scoringHandler) explainScore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	explanation, err := h.explanationService.ExplainScore(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No score found"})
			return
		}
		logger.Error("Failed to explain score", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to explain score"})
		return
	}
	c.JSON(http.StatusOK, explanation)
}
