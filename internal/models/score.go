package models

import "time"

// CreditScore represents one immutable scoring-run row. Factors live in
// their own table keyed by score_id.
type CreditScore struct {
	ScoreID    string    `db:"score_id"`
	UserID     string    `db:"user_id"`
	Score      int       `db:"score"`
	Confidence float64   `db:"confidence"`
	Trend      string    `db:"trend"`
	CreatedAt  time.Time `db:"created_at"`
}

// ScoreFactor represents one factor row of a scoring run.
type ScoreFactor struct {
	FactorID    string  `db:"factor_id"`
	ScoreID     string  `db:"score_id"`
	Category    string  `db:"category"`
	Impact      int     `db:"impact"`
	Weight      float64 `db:"weight"`
	Description string  `db:"description"`
}
