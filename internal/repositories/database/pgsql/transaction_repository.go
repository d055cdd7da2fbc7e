package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	"github.com/credvault/alt_credit_scoring_app/internal/models"
	"github.com/credvault/alt_credit_scoring_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, account_id, user_id, amount, direction, category, description, merchant, occurred_at, balance_after, is_recurring, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransactions inserts a chunk of transactions atomically within one
// database transaction and returns the number of rows actually inserted.
// Rows colliding on the identity key (account_id, amount, direction,
// occurred_at) are skipped via ON CONFLICT DO NOTHING.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (account_id, amount, direction, occurred_at) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.AccountID,
			m.UserID,
			m.Amount,
			m.Direction,
			m.Category,
			m.Description,
			m.Merchant,
			m.OccurredAt,
			m.BalanceAfter,
			m.IsRecurring,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	inserted := 0
	for range transactions {
		tag, err := results.Exec()
		if err != nil {
			results.Close() //nolint:errcheck
			return 0, fmt.Errorf("failed to insert transaction batch: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close transaction batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListTransactionsByUser retrieves all transactions of a user within
// [from, to), ordered by occurrence timestamp ascending.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return collectTransactions(rows)
}

// ListTransactionsByAccountSince retrieves all transactions of one account
// occurring at or after the given instant.
func (r *PgxTransactionRepository) ListTransactionsByAccountSince(ctx context.Context, accountID string, since time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND occurred_at >= $2
		ORDER BY occurred_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.UserID,
			&m.Amount,
			&m.Direction,
			&m.Category,
			&m.Description,
			&m.Merchant,
			&m.OccurredAt,
			&m.BalanceAfter,
			&m.IsRecurring,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}
