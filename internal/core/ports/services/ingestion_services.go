package services

import (
	"context"

	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

// IngestionSvcFacade defines the transaction ingestion pipeline:
// normalization, deduplication, categorization and chunked persistence.
type IngestionSvcFacade interface {
	// IngestTransactions runs one raw batch through the ingestion pipeline
	// for a user. Malformed records are dropped and counted, never fatal to
	// the batch.
	IngestTransactions(ctx context.Context, userID string, records []dto.RawTransactionRecord) (*dto.IngestionStats, error)
}
