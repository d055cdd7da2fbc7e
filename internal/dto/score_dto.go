package dto

import (
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// ScoreFactorResponse is the API form of one persisted score factor.
type ScoreFactorResponse struct {
	Category    string  `json:"category"`
	Impact      int     `json:"impact"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// ScoreResponse is the API form of one credit score snapshot.
type ScoreResponse struct {
	ScoreID    string                `json:"scoreID"`
	UserID     string                `json:"userID"`
	Score      int                   `json:"score"`
	Confidence float64               `json:"confidence"`
	Trend      string                `json:"trend"`
	Factors    []ScoreFactorResponse `json:"factors"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ScoreHistoryResponse wraps an ordered list of snapshots, most recent first.
type ScoreHistoryResponse struct {
	Scores []ScoreResponse `json:"scores"`
}

// ToScoreResponse converts a domain snapshot to its API form.
func ToScoreResponse(s *domain.CreditScoreSnapshot) ScoreResponse {
	factors := make([]ScoreFactorResponse, len(s.Factors))
	for i, f := range s.Factors {
		factors[i] = ScoreFactorResponse{
			Category:    string(f.Category),
			Impact:      f.Impact,
			Weight:      f.Weight,
			Description: f.Description,
		}
	}
	return ScoreResponse{
		ScoreID:    s.ScoreID,
		UserID:     s.UserID,
		Score:      s.Score,
		Confidence: s.Confidence,
		Trend:      string(s.Trend),
		Factors:    factors,
		CreatedAt:  s.CreatedAt,
	}
}

// ToScoreHistoryResponse converts a history slice to its API form.
func ToScoreHistoryResponse(snapshots []domain.CreditScoreSnapshot) ScoreHistoryResponse {
	scores := make([]ScoreResponse, len(snapshots))
	for i := range snapshots {
		scores[i] = ToScoreResponse(&snapshots[i])
	}
	return ScoreHistoryResponse{Scores: scores}
}
