package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
	"github.com/credvault/alt_credit_scoring_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ingestionHandler handles transaction ingestion requests.
type ingestionHandler struct {
	ingestionService portssvc.IngestionSvcFacade
}

func newIngestionHandler(is portssvc.IngestionSvcFacade) *ingestionHandler {
	return &ingestionHandler{ingestionService: is}
}

// registerIngestionRoutes registers routes related to transaction ingestion.
func registerIngestionRoutes(rg *gin.RouterGroup, ingestionService portssvc.IngestionSvcFacade) {
	h := newIngestionHandler(ingestionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.ingestTransactions)
	}
}

// ingestTransactions godoc
// @Summary Ingest a batch of raw transactions
// @Description Runs a raw transaction batch through normalization, deduplication, categorization and persistence. Malformed records are dropped and counted, never fatal.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   batch body dto.IngestTransactionsRequest true "Raw transaction records"
// @Success 200 {object} dto.IngestionStats
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown account in batch"
// @Failure 500 {object} map[string]string "Failed to ingest transactions"
// @Security BearerAuth
// @Router /users/{userID}/transactions [post]
func (h *ingestionHandler) ingestTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var req dto.IngestTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ingestTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	stats, err := h.ingestionService.IngestTransactions(c.Request.Context(), userID, req.Records)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ingestion batch references an unknown account", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown account in batch"})
			return
		}
		logger.Error("Failed to ingest transactions", slog.String("error", err.Error()))
		// Partial progress may exist; report what was committed alongside the failure.
		response := gin.H{"error": "Failed to ingest transactions"}
		if stats != nil {
			response["stats"] = stats
		}
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, stats)
}
