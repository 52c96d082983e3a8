package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate limiting, applied per client IP.
	RateLimitPeriod string
	RateLimitCount  int64

	// LowStockThreshold is the default closing-stock level at or below which
	// the low-stock report flags a batch. Overridable per request.
	LowStockThreshold int64

	// RecentLimit bounds the recent-sales and recent-purchases dashboard
	// lists.
	RecentLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_COUNT", 300)
	viper.SetDefault("LOW_STOCK_THRESHOLD", 1)
	viper.SetDefault("RECENT_LIMIT", 5)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimitPeriod = viper.GetString("RATE_LIMIT_PERIOD")
	cfg.RateLimitCount = viper.GetInt64("RATE_LIMIT_COUNT")
	cfg.LowStockThreshold = viper.GetInt64("LOW_STOCK_THRESHOLD")
	cfg.RecentLimit = viper.GetInt("RECENT_LIMIT")

	return cfg, nil
}
