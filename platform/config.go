package platform

import (
	"os"
	"time"
)

// Config carries everything resolved from the process environment. It is
// populated once in main, before any server state exists, and treated as
// read-only afterwards.
type Config struct {
	Port string

	// Database. When SQLHost is empty the server falls back to a local
	// sqlite file, which keeps development setups free of a mysql install.
	SQLHost     string
	SQLPort     string
	SQLUser     string
	SQLPassword string
	SQLDBName   string
	SQLitePath  string

	// LLM provider (an OpenAI-compatible endpoint, OpenRouter in production).
	LLMBaseURL string
	LLMAPIKey  string
	LLMTimeout time.Duration

	AccessSecret string

	// SMTP for the registration welcome mail. Optional; mail is skipped
	// when SMTPHost is empty.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// LoadConfig reads the environment into a Config. godotenv has already been
// applied by main, so plain os.Getenv sees .env values too.
func LoadConfig() *Config {
	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		SQLHost:      os.Getenv("SQL_HOST"),
		SQLPort:      getenv("SQL_PORT", "3306"),
		SQLUser:      os.Getenv("SQL_USER"),
		SQLPassword:  os.Getenv("SQL_PASSWORD"),
		SQLDBName:    getenv("SQL_DBNAME", "alphabot"),
		SQLitePath:   getenv("SQLITE_PATH", "alphabot.db"),
		LLMBaseURL:   getenv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMAPIKey:    os.Getenv("OPENROUTER_API_KEY"),
		LLMTimeout:   10 * time.Second,
		AccessSecret: os.Getenv("ACCESS_SECRET"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLMTimeout = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
