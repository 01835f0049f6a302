package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	MigrationsPath string

	// Completion provider (OpenAI-compatible; defaults target Groq)
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	// QueryRateLimit uses the limiter "count-period" format, e.g. "30-M".
	QueryRateLimit string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("LLM_MODEL", "llama3-70b-8192")
	viper.SetDefault("QUERY_RATE_LIMIT", "30-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		LLMAPIKey:       viper.GetString("GROQ_API_KEY"),
		LLMBaseURL:      viper.GetString("GROQ_BASE_URL"),
		LLMModel:        viper.GetString("LLM_MODEL"),
		QueryRateLimit:  viper.GetString("QUERY_RATE_LIMIT"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.LLMAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set. The /query endpoint will not function.")
	}

	return cfg, nil
}
