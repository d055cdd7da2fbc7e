package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// FactorAnalyzer is one independent financial-behavior dimension. Analyzers
// are pure functions over the same read-only transaction window and never
// mutate their input.
type FactorAnalyzer interface {
	Category() domain.FactorCategory
	Analyze(ctx context.Context, txns []domain.Transaction) domain.FactorResult
}

// clampScore bounds a factor or aggregate score to [ScoreFloor, ScoreCap].
func clampScore(score int) int {
	if score < domain.ScoreFloor {
		return domain.ScoreFloor
	}
	if score > domain.ScoreCap {
		return domain.ScoreCap
	}
	return score
}

// monthKey buckets a timestamp by calendar month.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// sortedMonthKeys returns the keys of a per-month map in chronological order.
func sortedMonthKeys[V any](byMonth map[string]V) []string {
	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// meanAndStdDev computes the mean and population standard deviation.
func meanAndStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// successiveGapsDays returns the day gaps between successive transactions,
// sorted by occurrence.
func successiveGapsDays(txns []domain.Transaction) []float64 {
	if len(txns) < 2 {
		return nil
	}
	ordered := make([]domain.Transaction, len(txns))
	copy(ordered, txns)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
	})
	gaps := make([]float64, 0, len(ordered)-1)
	for i := 1; i < len(ordered); i++ {
		gaps = append(gaps, ordered[i].OccurredAt.Sub(ordered[i-1].OccurredAt).Hours()/24)
	}
	return gaps
}
