package mapping

import (
	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
	"github.com/credvault/alt_credit_scoring_app/internal/models"
)

// ToModelCreditScore converts a domain snapshot header to its model row.
// Factors are mapped separately via ToModelScoreFactor.
func ToModelCreditScore(d domain.CreditScoreSnapshot) models.CreditScore {
	return models.CreditScore{
		ScoreID:    d.ScoreID,
		UserID:     d.UserID,
		Score:      d.Score,
		Confidence: d.Confidence,
		Trend:      string(d.Trend),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainCreditScore converts a model score row and its factor rows to a
// domain snapshot.
func ToDomainCreditScore(m models.CreditScore, factors []models.ScoreFactor) domain.CreditScoreSnapshot {
	snapshot := domain.CreditScoreSnapshot{
		ScoreID:    m.ScoreID,
		UserID:     m.UserID,
		Score:      m.Score,
		Confidence: m.Confidence,
		Trend:      domain.ScoreTrend(m.Trend),
		CreatedAt:  m.CreatedAt,
	}
	for _, f := range factors {
		snapshot.Factors = append(snapshot.Factors, ToDomainScoreFactor(f))
	}
	return snapshot
}

// ToModelScoreFactor converts a domain ScoreFactor to a model ScoreFactor
func ToModelScoreFactor(d domain.ScoreFactor) models.ScoreFactor {
	return models.ScoreFactor{
		FactorID:    d.FactorID,
		ScoreID:     d.ScoreID,
		Category:    string(d.Category),
		Impact:      d.Impact,
		Weight:      d.Weight,
		Description: d.Description,
	}
}

// ToDomainScoreFactor converts a model ScoreFactor to a domain ScoreFactor
func ToDomainScoreFactor(m models.ScoreFactor) domain.ScoreFactor {
	return domain.ScoreFactor{
		FactorID:    m.FactorID,
		ScoreID:     m.ScoreID,
		Category:    domain.FactorCategory(m.Category),
		Impact:      m.Impact,
		Weight:      m.Weight,
		Description: m.Description,
	}
}
