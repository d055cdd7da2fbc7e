package domain

import "time"

// Score bounds shared by every factor analyzer and the aggregator.
const (
	ScoreFloor = 300
	ScoreCap   = 850
)

// FactorCategory identifies one of the four financial-behavior dimensions.
type FactorCategory string

const (
	FactorIncomeStability    FactorCategory = "INCOME_STABILITY"
	FactorSavingsRate        FactorCategory = "SAVINGS_RATE"
	FactorPaymentBehavior    FactorCategory = "PAYMENT_BEHAVIOR"
	FactorInvestmentActivity FactorCategory = "INVESTMENT_ACTIVITY"
)

// ScoreTrend is the qualitative direction of score change between the two
// most recent snapshots.
type ScoreTrend string

const (
	TrendImproving ScoreTrend = "IMPROVING"
	TrendStable    ScoreTrend = "STABLE"
	TrendDeclining ScoreTrend = "DECLINING"
)

// FactorResult is the ephemeral output of one analyzer run. It is recomputed
// on every scoring run and never persisted independently; the persisted form
// is ScoreFactor.
type FactorResult struct {
	Category FactorCategory

	// Score is the factor sub-score in [ScoreFloor, ScoreCap].
	Score int

	// Metrics holds named numeric observations (monthly income, savings
	// rate, ...) consumed later by the explanation generator.
	Metrics map[string]float64

	// Labels holds named qualitative observations (salary frequency, risk
	// profile, savings trend, ...).
	Labels map[string]string
}

// ScoreFactor is the externally visible, persisted form of a FactorResult.
type ScoreFactor struct {
	FactorID string         `json:"factorID"` // Primary Key (UUID)
	ScoreID  string         `json:"scoreID"`  // FK -> CreditScoreSnapshot.ScoreID
	Category FactorCategory `json:"category"`
	// Impact is the signed relative contribution to the final score, in
	// [-100, +100].
	Impact int `json:"impact"`
	// Weight is the fixed aggregation weight for this category, in (0, 1).
	// Weights across the four categories sum to 1.0.
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// CreditScoreSnapshot is one scoring run's immutable output. Later runs
// supersede, never overwrite, so score history is an append-only sequence
// per user.
type CreditScoreSnapshot struct {
	ScoreID string `json:"scoreID"` // Primary Key (UUID)
	UserID  string `json:"userID"`
	// Score is the weighted combination of the four factor sub-scores,
	// always within [ScoreFloor, ScoreCap].
	Score int `json:"score"`
	// Confidence estimates how trustworthy the score is, in [0, 1].
	Confidence float64       `json:"confidence"`
	Trend      ScoreTrend    `json:"trend"`
	Factors    []ScoreFactor `json:"factors"`
	CreatedAt  time.Time     `json:"createdAt"`
}
