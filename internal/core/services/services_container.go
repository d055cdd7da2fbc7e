package services

import (
	"fmt"
	"log"

	portsrepo "github.com/credvault/alt_credit_scoring_app/internal/core/ports/repositories"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	categorizerOpts := []CategorizerOption{
		WithRecurrenceTolerance(cfg.Scoring.RecurrenceToleranceDays),
	}
	if cfg.CategoryRulesPath != "" {
		rules, err := LoadCategoryRules(cfg.CategoryRulesPath)
		if err != nil {
			log.Printf("Warning: failed to load category rules from %s, falling back to built-in rules: %v\n", cfg.CategoryRulesPath, err)
		} else {
			categorizerOpts = append(categorizerOpts, WithCategoryRules(rules))
		}
	}
	categorizer := NewCategorizer(categorizerOpts...)

	container.Account = NewAccountService(repos.AccountRepo)

	container.Ingestion = NewIngestionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		categorizer,
		WithDedupWindowDays(cfg.Scoring.DedupWindowDays),
		WithChunkSize(cfg.Scoring.ChunkSize),
	)

	container.Sufficiency = NewSufficiencyService(
		repos.TransactionRepo,
		repos.AccountRepo,
		cfg.Sufficiency,
		cfg.Scoring.WindowMonths,
	)

	analyzers := []FactorAnalyzer{
		NewIncomeStabilityAnalyzer(cfg.Scoring.LargeCreditThreshold),
		NewSavingsRateAnalyzer(),
		NewPaymentBehaviorAnalyzer(),
		NewInvestmentActivityAnalyzer(),
	}
	scoring, err := NewScoringService(
		container.Sufficiency,
		repos.TransactionRepo,
		repos.ScoreRepo,
		analyzers,
		WithScoringWindowMonths(cfg.Scoring.WindowMonths),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scoring service: %w", err)
	}
	container.Scoring = scoring

	container.Explanation = NewExplanationService(repos.ScoreRepo, cfg.Scoring.HistoryLimit)

	return container, nil
}
