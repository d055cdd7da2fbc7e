package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/credvault/alt_credit_scoring_app/internal/apperrors"
	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	"github.com/credvault/alt_credit_scoring_app/internal/models"
	"github.com/credvault/alt_credit_scoring_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxScoreRepository struct {
	BaseRepository
}

// newPgxScoreRepository creates a new repository for credit score snapshots.
func newPgxScoreRepository(pool *pgxpool.Pool) portsrepo.ScoreRepositoryFacade {
	return &PgxScoreRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxScoreRepository implements portsrepo.ScoreRepositoryFacade
var _ portsrepo.ScoreRepositoryFacade = (*PgxScoreRepository)(nil)

// SaveSnapshot persists the snapshot row and all of its factor rows as one
// atomic unit.
func (r *PgxScoreRepository) SaveSnapshot(ctx context.Context, snapshot domain.CreditScoreSnapshot) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	score := mapping.ToModelCreditScore(snapshot)
	scoreQuery := `
		INSERT INTO credit_scores (score_id, user_id, score, confidence, trend, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, scoreQuery,
		score.ScoreID,
		score.UserID,
		score.Score,
		score.Confidence,
		score.Trend,
		score.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert score snapshot %s: %w", score.ScoreID, err)
	}

	factorQuery := `
		INSERT INTO score_factors (factor_id, score_id, category, impact, weight, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, factor := range snapshot.Factors {
		m := mapping.ToModelScoreFactor(factor)
		batch.Queue(factorQuery, m.FactorID, m.ScoreID, m.Category, m.Impact, m.Weight, m.Description)
	}
	results := tx.SendBatch(ctx, batch)
	for range snapshot.Factors {
		if _, err := results.Exec(); err != nil {
			results.Close() //nolint:errcheck
			return fmt.Errorf("failed to insert score factors for %s: %w", score.ScoreID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close score factor batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindLatestScore retrieves the most recent snapshot for a user, including
// its factors.
func (r *PgxScoreRepository) FindLatestScore(ctx context.Context, userID string) (*domain.CreditScoreSnapshot, error) {
	query := `
		SELECT score_id, user_id, score, confidence, trend, created_at
		FROM credit_scores
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var m models.CreditScore
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.ScoreID,
		&m.UserID,
		&m.Score,
		&m.Confidence,
		&m.Trend,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest score for user %s: %w", userID, err)
	}

	factors, err := r.loadFactors(ctx, []string{m.ScoreID})
	if err != nil {
		return nil, err
	}
	snapshot := mapping.ToDomainCreditScore(m, factors[m.ScoreID])
	return &snapshot, nil
}

// ListScoreHistory retrieves up to limit snapshots for a user, including
// factors, most-recent-first.
func (r *PgxScoreRepository) ListScoreHistory(ctx context.Context, userID string, limit int) ([]domain.CreditScoreSnapshot, error) {
	query := `
		SELECT score_id, user_id, score, confidence, trend, created_at
		FROM credit_scores
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list score history for user %s: %w", userID, err)
	}
	defer rows.Close()

	var scores []models.CreditScore
	scoreIDs := make([]string, 0, limit)
	for rows.Next() {
		var m models.CreditScore
		if err := rows.Scan(&m.ScoreID, &m.UserID, &m.Score, &m.Confidence, &m.Trend, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		scores = append(scores, m)
		scoreIDs = append(scoreIDs, m.ScoreID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating score rows: %w", err)
	}
	if len(scores) == 0 {
		return nil, nil
	}

	factors, err := r.loadFactors(ctx, scoreIDs)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.CreditScoreSnapshot, len(scores))
	for i, score := range scores {
		snapshots[i] = mapping.ToDomainCreditScore(score, factors[score.ScoreID])
	}
	return snapshots, nil
}

// loadFactors fetches the factor rows for a set of snapshots in one query,
// grouped by score ID.
func (r *PgxScoreRepository) loadFactors(ctx context.Context, scoreIDs []string) (map[string][]models.ScoreFactor, error) {
	query := `
		SELECT factor_id, score_id, category, impact, weight, description
		FROM score_factors
		WHERE score_id = ANY($1)
		ORDER BY weight DESC, category ASC;
	`
	rows, err := r.Pool.Query(ctx, query, scoreIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load score factors: %w", err)
	}
	defer rows.Close()

	byScore := make(map[string][]models.ScoreFactor, len(scoreIDs))
	for rows.Next() {
		var m models.ScoreFactor
		if err := rows.Scan(&m.FactorID, &m.ScoreID, &m.Category, &m.Impact, &m.Weight, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan score factor row: %w", err)
		}
		byScore[m.ScoreID] = append(byScore[m.ScoreID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating score factor rows: %w", err)
	}
	return byScore, nil
}
