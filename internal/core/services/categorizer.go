package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/credvault/alt_credit_scoring_app/internal/core/domain"
)

// CategoryRule maps a set of keywords to a transaction category. Rules are
// evaluated in order; the first match wins.
type CategoryRule struct {
	Category domain.TransactionCategory `yaml:"category"`
	Keywords []string                   `yaml:"keywords"`
}

type categoryRuleFile struct {
	Rules []CategoryRule `yaml:"rules"`
}

// DefaultCategoryRules returns the built-in ordered keyword rule sets.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Category: domain.CategorySalary, Keywords: []string{"salary", "payroll", "wages", "stipend", "sal credit"}},
		{Category: domain.CategoryFood, Keywords: []string{"swiggy", "zomato", "restaurant", "cafe", "grocery", "supermarket", "dining", "food"}},
		{Category: domain.CategoryTransport, Keywords: []string{"uber", "ola cabs", "fuel", "petrol", "metro", "cab", "parking", "train ticket", "bus pass"}},
		{Category: domain.CategoryShopping, Keywords: []string{"amazon", "flipkart", "myntra", "mall", "retail", "shopping", "store"}},
		{Category: domain.CategoryUtilities, Keywords: []string{"electricity", "water bill", "gas bill", "broadband", "internet", "mobile recharge", "dth", "utility", "bill payment"}},
		{Category: domain.CategoryInvestment, Keywords: []string{"mutual fund", "sip", "zerodha", "groww", "stock", "equity", "etf", "fixed deposit", "recurring deposit", "ppf", "nps", "investment"}},
		{Category: domain.CategoryHealthcare, Keywords: []string{"hospital", "pharmacy", "clinic", "medical", "doctor", "diagnostic"}},
		{Category: domain.CategoryEntertainment, Keywords: []string{"netflix", "spotify", "prime video", "hotstar", "cinema", "movie", "bookmyshow", "gaming"}},
		{Category: domain.CategoryCash, Keywords: []string{"atm", "cash withdrawal", "cash deposit"}},
		{Category: domain.CategoryTransfer, Keywords: []string{"upi", "imps", "neft", "rtgs", "transfer"}},
	}
}

// LoadCategoryRules reads an ordered rule list from a YAML file.
func LoadCategoryRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category rules file: %w", err)
	}
	var file categoryRuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse category rules file: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("category rules file %s contains no rules", path)
	}
	return file.Rules, nil
}

// Categorizer assigns semantic categories and recurrence flags to
// transactions. Two runs over the same input produce identical assignments.
type Categorizer struct {
	rules         []CategoryRule
	toleranceDays float64
}

// CategorizerOption is a functional option for configuring the categorizer.
type CategorizerOption func(*Categorizer)

// WithCategoryRules replaces the built-in keyword rules.
func WithCategoryRules(rules []CategoryRule) CategorizerOption {
	return func(c *Categorizer) {
		if len(rules) > 0 {
			c.rules = rules
		}
	}
}

// WithRecurrenceTolerance sets the maximum deviation, in days, from the mean
// interval for a transaction group to count as recurring.
func WithRecurrenceTolerance(days int) CategorizerOption {
	return func(c *Categorizer) {
		if days > 0 {
			c.toleranceDays = float64(days)
		}
	}
}

// NewCategorizer creates a categorizer with the built-in rules unless
// overridden by options.
func NewCategorizer(options ...CategorizerOption) *Categorizer {
	c := &Categorizer{
		rules:         DefaultCategoryRules(),
		toleranceDays: 3,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Categorize annotates every transaction in place with a category and a
// recurrence flag. Transactions matching no rule stay uncategorized.
func (c *Categorizer) Categorize(txns []domain.Transaction) {
	for i := range txns {
		txns[i].Category = c.matchCategory(txns[i].MatchText())
	}
	c.markRecurring(txns)
}

func (c *Categorizer) matchCategory(text string) domain.TransactionCategory {
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Category
			}
		}
	}
	return domain.CategoryUncategorized
}

// markRecurring groups transactions by (amount, description, direction) and
// flags a whole group as recurring when every successive-day interval stays
// within the tolerance of the group's mean interval.
func (c *Categorizer) markRecurring(txns []domain.Transaction) {
	groups := make(map[string][]int)
	for i, txn := range txns {
		key := txn.Amount.String() + "|" + strings.ToLower(strings.TrimSpace(txn.Description)) + "|" + string(txn.Direction)
		groups[key] = append(groups[key], i)
	}

	for _, indices := range groups {
		if len(indices) < 2 {
			continue
		}

		sorted := make([]int, len(indices))
		copy(sorted, indices)
		sort.Slice(sorted, func(a, b int) bool {
			return txns[sorted[a]].OccurredAt.Before(txns[sorted[b]].OccurredAt)
		})

		intervals := make([]float64, 0, len(sorted)-1)
		for j := 1; j < len(sorted); j++ {
			gap := txns[sorted[j]].OccurredAt.Sub(txns[sorted[j-1]].OccurredAt).Hours() / 24
			intervals = append(intervals, gap)
		}

		mean := 0.0
		for _, iv := range intervals {
			mean += iv
		}
		mean /= float64(len(intervals))

		regular := true
		for _, iv := range intervals {
			if diff := iv - mean; diff > c.toleranceDays || diff < -c.toleranceDays {
				regular = false
				break
			}
		}

		if regular {
			for _, idx := range indices {
				txns[idx].IsRecurring = true
			}
		}
	}
}
