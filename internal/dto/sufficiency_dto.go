package dto

import (
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// RequirementResponse is the API form of one evaluated data requirement.
type RequirementResponse struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Weight   float64 `json:"weight"`
	Met      bool    `json:"met"`
}

// SufficiencyResponse is the API form of a sufficiency report.
type SufficiencyResponse struct {
	UserID            string                `json:"userID"`
	Requirements      []RequirementResponse `json:"requirements"`
	QualityScore      float64               `json:"qualityScore"`
	Sufficient        bool                  `json:"sufficient"`
	CanProceed        bool                  `json:"canProceed"`
	EstimatedAccuracy float64               `json:"estimatedAccuracy"`
	Recommendations   []string              `json:"recommendations"`
	EvaluatedAt       time.Time             `json:"evaluatedAt"`
}

// ToSufficiencyResponse converts a domain report to its API form.
func ToSufficiencyResponse(r *domain.SufficiencyReport) SufficiencyResponse {
	reqs := make([]RequirementResponse, len(r.Requirements))
	for i, req := range r.Requirements {
		reqs[i] = RequirementResponse{
			Name:     string(req.Name),
			Current:  req.Current,
			Required: req.Required,
			Weight:   req.Weight,
			Met:      req.Met,
		}
	}
	return SufficiencyResponse{
		UserID:            r.UserID,
		Requirements:      reqs,
		QualityScore:      r.QualityScore,
		Sufficient:        r.Sufficient,
		CanProceed:        r.CanProceed,
		EstimatedAccuracy: r.EstimatedAccuracy,
		Recommendations:   r.Recommendations,
		EvaluatedAt:       r.EvaluatedAt,
	}
}
