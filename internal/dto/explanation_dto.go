package dto

import "time"

// FactorExplanation is the natural-language rationale for one score factor.
type FactorExplanation struct {
	Category    string `json:"category"`
	Impact      int    `json:"impact"`
	Explanation string `json:"explanation"`
	// Actions are the banded improvement actions for this factor.
	Actions []string `json:"actions"`
}

// TrendPoint is one entry of the historical-trend series.
type TrendPoint struct {
	Period string    `json:"period"`
	Score  int       `json:"score"`
	Delta  int       `json:"delta"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// ImprovementTip is one ranked improvement recommendation.
type ImprovementTip struct {
	Category string `json:"category"`
	Priority string `json:"priority"` // high, medium, low
	Tip      string `json:"tip"`
	// PotentialImpact estimates how many points addressing this tip could add.
	PotentialImpact int `json:"potentialImpact"`
}

// ScoreExplanationResponse is the full explanation payload for a user's
// latest snapshot.
type ScoreExplanationResponse struct {
	UserID          string              `json:"userID"`
	Score           int                 `json:"score"`
	Factors         []FactorExplanation `json:"factors"`
	HistoricalTrend []TrendPoint        `json:"historicalTrend"`
	ImprovementTips []ImprovementTip    `json:"improvementTips"`
}
