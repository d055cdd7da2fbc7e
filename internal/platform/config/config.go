package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ScoringConfig holds the tunable thresholds of the scoring pipeline.
type ScoringConfig struct {
	WindowMonths            int
	DedupWindowDays         int
	ChunkSize               int
	LargeCreditThreshold    float64
	RecurrenceToleranceDays int
	HistoryLimit            int
}

// SufficiencyConfig holds the configured minimums of the data-sufficiency gate.
type SufficiencyConfig struct {
	MinTransactions     int
	MinActiveAccounts   int
	MinTimespanDays     int
	MinCategories       int
	MinMonthlyFrequency float64
}

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// API credentials for the login endpoint. The secret is stored as a
	// bcrypt hash.
	APIClientID         string
	APIClientSecretHash string

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit string

	// CategoryRulesPath optionally points at a YAML file overriding the
	// built-in categorizer keyword rules.
	CategoryRulesPath string

	Scoring     ScoringConfig
	Sufficiency SufficiencyConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "alt-credit-scoring-app")
	viper.SetDefault("API_CLIENT_ID", "")
	viper.SetDefault("API_CLIENT_SECRET_HASH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CATEGORY_RULES_PATH", "")

	viper.SetDefault("SCORING_WINDOW_MONTHS", 12)
	viper.SetDefault("SCORING_DEDUP_WINDOW_DAYS", 90)
	viper.SetDefault("SCORING_CHUNK_SIZE", 100)
	viper.SetDefault("SCORING_LARGE_CREDIT_THRESHOLD", 20000.0)
	viper.SetDefault("SCORING_RECURRENCE_TOLERANCE_DAYS", 3)
	viper.SetDefault("SCORING_HISTORY_LIMIT", 12)

	viper.SetDefault("SUFFICIENCY_MIN_TRANSACTIONS", 50)
	viper.SetDefault("SUFFICIENCY_MIN_ACTIVE_ACCOUNTS", 2)
	viper.SetDefault("SUFFICIENCY_MIN_TIMESPAN_DAYS", 90)
	viper.SetDefault("SUFFICIENCY_MIN_CATEGORIES", 3)
	viper.SetDefault("SUFFICIENCY_MIN_MONTHLY_FREQUENCY", 5.0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.APIClientID = viper.GetString("API_CLIENT_ID")
	cfg.APIClientSecretHash = viper.GetString("API_CLIENT_SECRET_HASH")
	if cfg.APIClientID == "" || cfg.APIClientSecretHash == "" {
		log.Println("Warning: API_CLIENT_ID/API_CLIENT_SECRET_HASH not set. The login endpoint will reject all requests.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CategoryRulesPath = viper.GetString("CATEGORY_RULES_PATH")

	cfg.Scoring = ScoringConfig{
		WindowMonths:            viper.GetInt("SCORING_WINDOW_MONTHS"),
		DedupWindowDays:         viper.GetInt("SCORING_DEDUP_WINDOW_DAYS"),
		ChunkSize:               viper.GetInt("SCORING_CHUNK_SIZE"),
		LargeCreditThreshold:    viper.GetFloat64("SCORING_LARGE_CREDIT_THRESHOLD"),
		RecurrenceToleranceDays: viper.GetInt("SCORING_RECURRENCE_TOLERANCE_DAYS"),
		HistoryLimit:            viper.GetInt("SCORING_HISTORY_LIMIT"),
	}

	cfg.Sufficiency = SufficiencyConfig{
		MinTransactions:     viper.GetInt("SUFFICIENCY_MIN_TRANSACTIONS"),
		MinActiveAccounts:   viper.GetInt("SUFFICIENCY_MIN_ACTIVE_ACCOUNTS"),
		MinTimespanDays:     viper.GetInt("SUFFICIENCY_MIN_TIMESPAN_DAYS"),
		MinCategories:       viper.GetInt("SUFFICIENCY_MIN_CATEGORIES"),
		MinMonthlyFrequency: viper.GetFloat64("SUFFICIENCY_MIN_MONTHLY_FREQUENCY"),
	}

	return cfg, nil
}
