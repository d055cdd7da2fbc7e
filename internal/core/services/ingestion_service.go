package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/dto"
)

// ingestionService runs raw transaction batches through normalization,
// deduplication, categorization and chunked persistence.
type ingestionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	normalizer  *Normalizer
	categorizer *Categorizer
	dedupWindow time.Duration
	chunkSize   int
}

// IngestionServiceOption is a functional option for configuring the ingestion service.
type IngestionServiceOption func(*ingestionService)

// WithDedupWindowDays sets the trailing window within which previously stored
// transactions participate in duplicate detection.
func WithDedupWindowDays(days int) IngestionServiceOption {
	return func(s *ingestionService) {
		if days > 0 {
			s.dedupWindow = time.Duration(days) * 24 * time.Hour
		}
	}
}

// WithChunkSize sets how many rows are written per database batch.
func WithChunkSize(size int) IngestionServiceOption {
	return func(s *ingestionService) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// NewIngestionService creates the ingestion pipeline service.
func NewIngestionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, categorizer *Categorizer, options ...IngestionServiceOption) portssvc.IngestionSvcFacade {
	svc := &ingestionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		normalizer:  NewNormalizer(),
		categorizer: categorizer,
		dedupWindow: 90 * 24 * time.Hour,
		chunkSize:   100,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ingestionService implements the IngestionSvcFacade interface
var _ portssvc.IngestionSvcFacade = (*ingestionService)(nil)

// IngestTransactions implements portssvc.IngestionSvcFacade.
func (s *ingestionService) IngestTransactions(ctx context.Context, userID string, records []dto.RawTransactionRecord) (*dto.IngestionStats, error) {
	now := time.Now().UTC()
	stats := &dto.IngestionStats{Processed: len(records)}

	// Normalize: drop and count malformed records, keep the rest.
	batch := s.normalizer.NormalizeBatch(userID, records, now)
	stats.Rejected = len(batch.Rejected)
	for _, rej := range batch.Rejected {
		s.LogWarn(ctx, "Dropped malformed transaction record", slog.Int("index", rej.Index), slog.String("reason", rej.Reason))
	}
	for _, warning := range batch.Warnings {
		s.LogWarn(ctx, "Unusual transaction record accepted", slog.String("warning", warning))
	}

	// Every referenced account must exist and belong to the ingesting user.
	if err := s.verifyAccounts(ctx, batch.Accepted, userID); err != nil {
		return nil, err
	}

	// Deduplicate against prior records per account within the trailing window.
	deduped, duplicates, err := s.dedupe(ctx, batch.Accepted, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior transactions for dedup: %w", err)
	}
	stats.Duplicates = duplicates

	// Categorize and flag recurrence on the surviving records.
	s.categorizer.Categorize(deduped)
	for _, txn := range deduped {
		if txn.Category != domain.CategoryUncategorized {
			stats.Categorized++
		}
		if txn.IsRecurring {
			stats.Recurring++
		}
	}

	// Persist in chunks. A failing chunk does not roll back previously
	// committed chunks; the failure is propagated to the caller.
	inserted, err := s.persistChunked(ctx, deduped)
	stats.Accepted = inserted
	stats.Duplicates += len(deduped) - inserted // rows skipped by the DB identity key
	if err != nil {
		return stats, err
	}

	// Record the sync on every affected account.
	s.touchAccounts(ctx, deduped, now, userID)

	s.LogInfo(ctx, "Transaction batch ingested",
		slog.Int("processed", stats.Processed),
		slog.Int("accepted", stats.Accepted),
		slog.Int("rejected", stats.Rejected),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("categorized", stats.Categorized),
		slog.Int("recurring", stats.Recurring))
	return stats, nil
}

// verifyAccounts resolves each distinct account referenced by the batch. An
// account that does not exist, or that is owned by a different user, fails
// the whole batch with ErrNotFound before anything is written.
func (s *ingestionService) verifyAccounts(ctx context.Context, txns []domain.Transaction, userID string) error {
	checked := make(map[string]struct{})
	for _, txn := range txns {
		if _, done := checked[txn.AccountID]; done {
			continue
		}
		checked[txn.AccountID] = struct{}{}
		account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
		if err != nil {
			return fmt.Errorf("failed to verify account %s: %w", txn.AccountID, err)
		}
		if account.UserID != userID {
			s.LogWarn(ctx, "Batch references an account of another user", slog.String("account_id", txn.AccountID))
			return fmt.Errorf("account %s: %w", txn.AccountID, apperrors.ErrNotFound)
		}
	}
	return nil
}

// dedupe drops incoming records whose identity key already exists among the
// previously stored transactions of the same account, then among the batch
// itself. Re-ingesting an unchanged batch therefore yields zero new records.
func (s *ingestionService) dedupe(ctx context.Context, incoming []domain.Transaction, now time.Time) ([]domain.Transaction, int, error) {
	if len(incoming) == 0 {
		return nil, 0, nil
	}

	accountIDs := make(map[string]struct{})
	for _, txn := range incoming {
		accountIDs[txn.AccountID] = struct{}{}
	}

	since := now.Add(-s.dedupWindow)
	seen := make(map[string]struct{})
	for accountID := range accountIDs {
		prior, err := s.txnRepo.ListTransactionsByAccountSince(ctx, accountID, since)
		if err != nil {
			return nil, 0, err
		}
		for _, txn := range prior {
			seen[txn.DedupKey()] = struct{}{}
		}
	}

	kept := make([]domain.Transaction, 0, len(incoming))
	duplicates := 0
	for _, txn := range incoming {
		key := txn.DedupKey()
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, txn)
	}
	return kept, duplicates, nil
}

func (s *ingestionService) persistChunked(ctx context.Context, txns []domain.Transaction) (int, error) {
	inserted := 0
	for start := 0; start < len(txns); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(txns) {
			end = len(txns)
		}
		n, err := s.txnRepo.SaveTransactions(ctx, txns[start:end])
		inserted += n
		if err != nil {
			s.LogError(ctx, err, "Failed to persist transaction chunk", slog.Int("chunk_start", start), slog.Int("chunk_size", end-start))
			return inserted, fmt.Errorf("failed to persist transaction chunk at offset %d: %w", start, err)
		}
	}
	return inserted, nil
}

func (s *ingestionService) touchAccounts(ctx context.Context, txns []domain.Transaction, now time.Time, userID string) {
	touched := make(map[string]struct{})
	for _, txn := range txns {
		if _, done := touched[txn.AccountID]; done {
			continue
		}
		touched[txn.AccountID] = struct{}{}
		if err := s.accountRepo.TouchAccountSync(ctx, txn.AccountID, now, userID); err != nil {
			// Sync bookkeeping must not fail the ingestion result.
			s.LogWarn(ctx, "Failed to update account sync timestamp", slog.String("account_id", txn.AccountID), slog.String("error", err.Error()))
		}
	}
}
