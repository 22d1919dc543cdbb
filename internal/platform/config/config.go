package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	CurrencyCode       string   `mapstructure:"CURRENCY_CODE"`
	CurrenciesFile     string   `mapstructure:"CURRENCIES_FILE"`
	ErrorMode          string   `mapstructure:"ERROR_MODE"`
	Workers            int      `mapstructure:"WORKERS"`
	RandomSeed         uint64   `mapstructure:"RANDOM_SEED"` // 0 means unseeded
	Debug              bool     `mapstructure:"DEBUG"`
	Port               string   `mapstructure:"PORT"`
	IsProduction       bool     `mapstructure:"IS_PRODUCTION"`
	RateLimit          string   `mapstructure:"RATE_LIMIT"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("CURRENCY_CODE", "USD")
	v.SetDefault("CURRENCIES_FILE", "")
	v.SetDefault("ERROR_MODE", "fail_fast")
	v.SetDefault("WORKERS", 1)
	v.SetDefault("RANDOM_SEED", 0)
	v.SetDefault("DEBUG", false)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom reads configuration from v, which may carry bound command line flags.
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	SetDefaults(v)

	// Values from .env are in the process environment by now and are overridden by real ones.
	v.AutomaticEnv()

	cfg := &Config{
		CurrencyCode:   strings.ToUpper(strings.TrimSpace(v.GetString("CURRENCY_CODE"))),
		CurrenciesFile: v.GetString("CURRENCIES_FILE"),
		ErrorMode:      v.GetString("ERROR_MODE"),
		Workers:        v.GetInt("WORKERS"),
		RandomSeed:     v.GetUint64("RANDOM_SEED"),
		Debug:          v.GetBool("DEBUG"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = "USD"
		log.Printf("Warning: CURRENCY_CODE is empty. Defaulting to %s\n", cfg.CurrencyCode)
	}

	if cfg.Workers < 1 {
		log.Printf("Warning: WORKERS must be at least 1 (got %d). Defaulting to 1\n", cfg.Workers)
		cfg.Workers = 1
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
