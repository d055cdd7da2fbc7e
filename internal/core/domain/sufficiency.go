package domain

import "time"

// RequirementName identifies one weighted data-sufficiency requirement.
type RequirementName string

const (
	RequirementTransactionCount RequirementName = "TRANSACTION_COUNT"
	RequirementActiveAccounts   RequirementName = "ACTIVE_ACCOUNTS"
	RequirementDataTimespan     RequirementName = "DATA_TIMESPAN_DAYS"
	RequirementCategoryCoverage RequirementName = "DISTINCT_CATEGORIES"
	RequirementMonthlyFrequency RequirementName = "MONTHLY_FREQUENCY"
)

// DataRequirement is one evaluated sufficiency requirement.
type DataRequirement struct {
	Name     RequirementName `json:"name"`
	Current  float64         `json:"current"`
	Required float64         `json:"required"`
	Weight   float64         `json:"weight"`
	Met      bool            `json:"met"`
}

// SufficiencyReport is the non-persisted result of the data-sufficiency
// evaluation. Recomputed on demand.
type SufficiencyReport struct {
	UserID       string            `json:"userID"`
	Requirements []DataRequirement `json:"requirements"`
	// QualityScore is the weighted overall data quality in [0, 100].
	QualityScore float64 `json:"qualityScore"`
	// Sufficient is true iff every requirement is met.
	Sufficient bool `json:"sufficient"`
	// CanProceed relaxes Sufficient to only requirements with weight >= 0.25.
	CanProceed bool `json:"canProceed"`
	// EstimatedAccuracy estimates score accuracy in [0, 1].
	EstimatedAccuracy float64 `json:"estimatedAccuracy"`
	// Recommendations are ranked, human-readable actions to improve data
	// coverage, most important first.
	Recommendations []string  `json:"recommendations"`
	EvaluatedAt     time.Time `json:"evaluatedAt"`
}
